package main

import (
	"context"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/app"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Recompute cached eligibility for every open job once",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return withContainer(ctx, func(c *app.Container) error {
			n, err := c.Eligibility.RefreshOpenJobs(ctx)
			if err != nil {
				color.Yellow("Refreshed %d job(s) with errors.", n)
				return errors.Wrap(err, "refresh")
			}
			color.Green("Refreshed %d job(s).", n)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}
