package main

import (
	"fmt"
	"os"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-timesheet-go/internal/pkg/jwt"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var (
		secret     string
		ttl        string
		userID     string
		companyID  string
		employeeID string
		role       string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for calling the timesheet API locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				secret = os.Getenv("JWT_SECRET_KEY")
			}
			if secret == "" {
				return fmt.Errorf("--secret or JWT_SECRET_KEY is required")
			}

			switch user.Role(role) {
			case user.RoleOwner, user.RoleManager, user.RoleEmployee, user.RolePending:
			default:
				return fmt.Errorf("unknown role %q", role)
			}

			var company, employee *string
			if companyID != "" {
				company = &companyID
			}
			if employeeID != "" {
				employee = &employeeID
			}

			token, _, err := jwt.NewJWTService(secret, ttl).GenerateAccessToken(userID, employee, company, user.Role(role))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "HS256 signing secret (defaults to JWT_SECRET_KEY)")
	cmd.Flags().StringVar(&ttl, "ttl", "1h", "Token lifetime")
	cmd.Flags().StringVar(&userID, "user", "local-user", "user_id claim")
	cmd.Flags().StringVar(&companyID, "company", "", "company_id claim")
	cmd.Flags().StringVar(&employeeID, "employee", "", "employee_id claim")
	cmd.Flags().StringVar(&role, "role", string(user.RoleManager), "role claim: owner, manager, employee or pending")
	return cmd
}
