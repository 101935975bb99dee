package main

import (
	"context"
	"os"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/app"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var estimateJobID string

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Count the students a saved job's criteria reach",
	Long: `Runs the job's current eligibility criteria against every active
student, the same way the authoring form does for a draft.

Example:
  placementctl estimate --job 3f0c2a8e-7c55-4a8e-9d6b-1c2f3e4d5a6b`,
	RunE: runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)
	estimateCmd.Flags().StringVar(&estimateJobID, "job", "", "Job id")
	_ = estimateCmd.MarkFlagRequired("job")
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	jobID, err := uuid.Parse(estimateJobID)
	if err != nil {
		return errors.Wrapf(err, "invalid --job %q", estimateJobID)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return withContainer(ctx, func(c *app.Container) error {
		j, err := repository.NewPostgresJobRepository(c.DB).FindByID(ctx, jobID)
		if err != nil {
			return errors.Wrapf(err, "load job %s", jobID)
		}
		est, err := c.Eligibility.EstimateEligibleCount(ctx, j)
		if err != nil {
			return errors.Wrap(err, "estimate")
		}
		renderEstimate(os.Stdout, j, est)
		return nil
	})
}
