package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/app"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/config"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "placementctl",
	Short: "Operate the placement eligibility engine",
	Long: `placementctl runs database migrations and inspects job eligibility
from the command line: estimate how many students a job reaches, list the
eligible students with their match scores, or check one student against a job.

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log engine and cache activity to stderr")
}

func logger() *log.Logger {
	if verbose {
		return log.New(os.Stderr, "", log.LstdFlags)
	}
	return log.New(io.Discard, "", 0)
}

// withContainer loads configuration, connects, runs fn and releases resources.
func withContainer(ctx context.Context, fn func(*app.Container) error) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	c, err := app.NewContainer(ctx, cfg, logger())
	if err != nil {
		return errors.Wrap(err, "connect")
	}
	defer func() {
		_ = c.Close()
	}()

	return fn(c)
}
