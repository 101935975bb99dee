package main

import (
	"context"
	"os"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/app"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/config"
	dbpostgres "github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/database/postgres"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var migrateStatus bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Long: `Applies the embedded SQL migrations in version order under an advisory
lock. Already applied files are verified by checksum.

Examples:
  placementctl migrate
  placementctl migrate --status`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().BoolVar(&migrateStatus, "status", false, "List migrations and whether they are applied")
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	db, err := dbpostgres.ConnectNamed(ctx, cfg.Database, "placementctl")
	if err != nil {
		return errors.Wrap(err, "connect database")
	}
	defer func() {
		_ = db.Close()
	}()

	runner := app.NewMigrationRunner(logger())

	if migrateStatus {
		statuses, err := runner.Statuses(ctx, db.SQLDB())
		if err != nil {
			return errors.Wrap(err, "read migration status")
		}
		renderMigrations(os.Stdout, statuses)
		return nil
	}

	n, err := runner.Run(ctx, db.SQLDB())
	if err != nil {
		return errors.Wrap(err, "apply migrations")
	}
	if n == 0 {
		color.Green("Database is up to date.")
		return nil
	}
	color.Green("Applied %d migration(s).", n)
	return nil
}
