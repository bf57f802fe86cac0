package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tourdesk/tour-service/internal/core/service"
)

var (
	userName     string
	userPassword string
	userRole     string
)

// userCmd manages accounts
var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage accounts",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an account",
	Long: `Creates an account with a bcrypt-hashed password.

Example:
  tours user create --username alice --password s3cret --role manager`,
	Args: cobra.NoArgs,
	RunE: runUserCreate,
}

func init() {
	userCreateCmd.Flags().StringVar(&userName, "username", "", "account name")
	userCreateCmd.Flags().StringVar(&userPassword, "password", "", "account password")
	userCreateCmd.Flags().StringVar(&userRole, "role", "customer", "admin, manager or customer")
	_ = userCreateCmd.MarkFlagRequired("username")
	_ = userCreateCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userCreateCmd)
}

func runUserCreate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	client, _, users, err := openMongo(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	// No limiter: account creation never logs in.
	svc := service.NewAuthService(users, nil, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, log)
	u, err := svc.Register(ctx, userName, userPassword, userRole)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", u.Username, u.Role)
	return nil
}
