package main

import (
	"fmt"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/config"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	tokenUserID string
	tokenRole   string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an access token for local testing",
	Long: `Signs an access token with JWT_ACCESS_SECRET for the given user and
role. Roles: student, campus_poc, coordinator, manager.`,
	RunE: runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().StringVar(&tokenUserID, "user", "", "User id")
	tokenCmd.Flags().StringVar(&tokenRole, "role", string(jwt.RoleCoordinator), "Role claim")
	_ = tokenCmd.MarkFlagRequired("user")
}

func runToken(cmd *cobra.Command, _ []string) error {
	userID, err := uuid.Parse(tokenUserID)
	if err != nil {
		return errors.Wrapf(err, "invalid --user %q", tokenUserID)
	}
	role, ok := jwt.ParseRole(tokenRole)
	if !ok {
		return errors.Errorf("unknown role %q", tokenRole)
	}

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	tok, err := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn).GenerateAccessToken(userID, role)
	if err != nil {
		return errors.Wrap(err, "sign token")
	}
	fmt.Fprintln(cmd.OutOrStdout(), tok)
	return nil
}
