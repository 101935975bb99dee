package main

import (
	"context"
	"os"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/app"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	checkJobID  string
	checkUserID string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check one student against a job",
	Long: `Runs the application gate for a single student: prints whether the
student may apply, the first criterion they fail, or their match breakdown.

Example:
  placementctl check --job 3f0c2a8e-7c55-4a8e-9d6b-1c2f3e4d5a6b --user 9b2f1c1e-4a7d-4a51-9d8e-0c4f1b7a2d11`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&checkJobID, "job", "", "Job id")
	checkCmd.Flags().StringVar(&checkUserID, "user", "", "Student user id")
	_ = checkCmd.MarkFlagRequired("job")
	_ = checkCmd.MarkFlagRequired("user")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	jobID, err := uuid.Parse(checkJobID)
	if err != nil {
		return errors.Wrapf(err, "invalid --job %q", checkJobID)
	}
	userID, err := uuid.Parse(checkUserID)
	if err != nil {
		return errors.Wrapf(err, "invalid --user %q", checkUserID)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return withContainer(ctx, func(c *app.Container) error {
		res, err := c.Eligibility.EvaluateForStudent(ctx, userID, jobID)
		if err != nil {
			return errors.Wrap(err, "evaluate")
		}
		renderStudentResult(os.Stdout, res)
		return nil
	})
}
