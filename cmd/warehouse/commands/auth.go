package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	loginEmail       string
	loginPassword    string
	registerUsername string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Exchange credentials for a bearer token",
	Long: `Log in to the remote store and print the bearer token.

Put the token in API_TOKEN (or the .env file) for subsequent commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := newController()
		if err != nil {
			return err
		}
		session, err := client.Login(cmd.Context(), loginEmail, loginPassword)
		if err != nil {
			return err
		}
		fmt.Printf("Logged in as %v\n", session.User["username"])
		fmt.Printf("API_TOKEN=%s\n", session.Token)
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new dashboard user",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := newController()
		if err != nil {
			return err
		}
		if err := client.Register(cmd.Context(), registerUsername, loginEmail, loginPassword); err != nil {
			return err
		}
		fmt.Println("Registered. You can now log in.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd, registerCmd)

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email (required)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password (required)")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringVar(&registerUsername, "username", "", "Username (required)")
	registerCmd.Flags().StringVar(&loginEmail, "email", "", "Email (required)")
	registerCmd.Flags().StringVar(&loginPassword, "password", "", "Password (required)")
	_ = registerCmd.MarkFlagRequired("username")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
}
