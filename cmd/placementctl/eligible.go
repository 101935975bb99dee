package main

import (
	"context"
	"os"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/app"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	eligibleJobID   string
	eligibleAll     bool
	eligibleRefresh bool
)

var eligibleCmd = &cobra.Command{
	Use:   "eligible",
	Short: "List eligible students for a job with match scores",
	Long: `Prints the eligible-students view of a job: counts of eligible,
applied and not-yet-applied students followed by one row per student,
best match first.

Examples:
  placementctl eligible --job 3f0c2a8e-7c55-4a8e-9d6b-1c2f3e4d5a6b
  placementctl eligible --job 3f0c2a8e-7c55-4a8e-9d6b-1c2f3e4d5a6b --all --refresh`,
	RunE: runEligible,
}

func init() {
	rootCmd.AddCommand(eligibleCmd)
	eligibleCmd.Flags().StringVar(&eligibleJobID, "job", "", "Job id")
	eligibleCmd.Flags().BoolVar(&eligibleAll, "all", false, "Include ineligible students with the reason they fail")
	eligibleCmd.Flags().BoolVar(&eligibleRefresh, "refresh", false, "Bypass the cache")
	_ = eligibleCmd.MarkFlagRequired("job")
}

func runEligible(cmd *cobra.Command, _ []string) error {
	jobID, err := uuid.Parse(eligibleJobID)
	if err != nil {
		return errors.Wrapf(err, "invalid --job %q", eligibleJobID)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return withContainer(ctx, func(c *app.Container) error {
		res, err := c.Eligibility.ListEligibleStudents(ctx, jobID, usecase.ListEligibleParams{
			IncludeIneligible: eligibleAll,
			Refresh:           eligibleRefresh,
		})
		if err != nil {
			return errors.Wrapf(err, "list eligible students for job %s", jobID)
		}
		renderAggregate(os.Stdout, res)
		return nil
	})
}
