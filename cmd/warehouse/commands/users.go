package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Browse and manage dashboard users",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, err := newController()
		if err != nil {
			return err
		}
		if err := ctrl.RefreshUsers(cmd.Context()); err != nil {
			return err
		}

		users := ctrl.Store().Users()
		if len(users) == 0 {
			fmt.Println("No users found.")
			return nil
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tROLE\tCREATED")
		for _, u := range users {
			created := ""
			if !u.CreatedAt.IsZero() {
				created = u.CreatedAt.Format(time.RFC3339)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Username, u.Email, u.Role, created)
		}
		return w.Flush()
	},
}

var usersSetRoleCmd = &cobra.Command{
	Use:   "set-role <id> <role>",
	Short: "Change a user's role (user or admin)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}
		role := args[1]
		if role != "user" && role != "admin" {
			return fmt.Errorf("role must be user or admin, got %q", role)
		}

		_, client, err := newController()
		if err != nil {
			return err
		}
		if _, err := client.UpdateUser(cmd.Context(), id, map[string]any{"role": role}); err != nil {
			return err
		}
		fmt.Printf("User %d is now %s\n", id, role)
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}

		_, client, err := newController()
		if err != nil {
			return err
		}
		if err := client.DeleteUser(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("User %d deleted\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersListCmd, usersSetRoleCmd, usersDeleteCmd)
}
