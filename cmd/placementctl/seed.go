package main

import (
	"context"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/config"
	dbpostgres "github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/database/postgres"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/database/seeder"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo jobs, students and applications",
	Long: `Inserts a small demo dataset for local development. Existing rows are left
untouched, so the command can be run repeatedly. Migrations must be applied first.

Examples:
  placementctl migrate && placementctl seed`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
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

	runner := seeder.Runner{Seeders: seeder.Defaults(), Logger: logger()}
	if err := runner.Run(ctx, db); err != nil {
		return errors.Wrap(err, "seed demo data")
	}
	color.Green("Demo data loaded.")
	return nil
}
