package users

import (
	"fmt"
	"net/url"

	"github.com/crucial707/exercise-tracker/cmd/cli/client"
	"github.com/crucial707/exercise-tracker/cmd/cli/output"
	"github.com/crucial707/exercise-tracker/cmd/cli/root"
	"github.com/crucial707/exercise-tracker/internal/models"
	"github.com/spf13/cobra"
)

// ==========================
// CLI Command Init
// ==========================
func init() {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Register and list users",
		Long: `Register a user by name or list every registered user.
Registering a name that already exists returns the existing user.`,
	}

	usersCmd.AddCommand(createUserCmd(), listUsersCmd())
	root.GetRoot().AddCommand(usersCmd)
}

// ==========================
// Create User
// ==========================
func createUserCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "create <username>",
		Short: "Register a user (or fetch the existing one)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var user models.User
			if err := client.PostForm("/api/users", url.Values{"username": {args[0]}}, &user); err != nil {
				return fmt.Errorf("create user: %w", err)
			}
			if asJSON {
				return output.PrintJSON(user)
			}
			output.RenderTable([]string{"ID", "Username"}, [][]interface{}{{user.ID, user.Username}})
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON")
	return cmd
}

// ==========================
// List Users
// ==========================
func listUsersCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			var users []models.User
			if err := client.GetJSON("/api/users", nil, &users); err != nil {
				return fmt.Errorf("list users: %w", err)
			}
			if asJSON {
				return output.PrintJSON(users)
			}

			rows := make([][]interface{}, 0, len(users))
			for _, u := range users {
				rows = append(rows, []interface{}{u.ID, u.Username})
			}
			output.RenderTable([]string{"ID", "Username"}, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON")
	return cmd
}
