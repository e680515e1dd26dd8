package command

// auth.go handles authentication commands for the bookstore CLI.

import (
	"fmt"

	"bookstore/cmd/cli/command/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Authenticate with the bookstore API server. Supports login and logout.`,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to your staff account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var c client.LoginRequest
		c.Username, _ = cmd.Flags().GetString("username")
		c.Password, _ = cmd.Flags().GetString("password")

		httpClient := client.NewHTTPClient(apiURL)
		response, err := httpClient.Login(&c)
		if err != nil {
			return fmt.Errorf("login process failed: %w", err)
		}

		saveToken(response.AccessToken)

		color.Green("✓ Successfully logged in!")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout from your staff account",
	Run: func(cmd *cobra.Command, args []string) {
		saveToken("")
		color.Green("✓ Successfully logged out.")
	},
}

func init() {
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)

	loginCmd.Flags().StringP("username", "u", "", "Username for the account")
	loginCmd.Flags().StringP("password", "p", "", "Password for the account")
	loginCmd.MarkFlagRequired("username")
	loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(authCmd)
}
