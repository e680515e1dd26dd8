package command

// email.go sends a broadcast email to selected users through the API.

import (
	"fmt"

	"bookstore/cmd/cli/command/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Email selected users",
	Long:  `Send the same message to one or more users, picked by their IDs. Useful for chasing overdue rentals.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var c client.EmailRequest
		c.Recipients, _ = cmd.Flags().GetStringSlice("user")
		c.Subject, _ = cmd.Flags().GetString("subject")
		c.Message, _ = cmd.Flags().GetString("message")

		httpClient := client.NewHTTPClient(apiURL)
		httpClient.SetToken(token)
		if err := httpClient.SendEmail(&c); err != nil {
			return fmt.Errorf("could not send email: %w", err)
		}

		color.Green("✓ Sent to %d user(s).", len(c.Recipients))
		return nil
	},
}

func init() {
	emailCmd.Flags().StringSliceP("user", "u", nil, "User ID to send to (repeatable)")
	emailCmd.Flags().StringP("subject", "s", "", "Email subject")
	emailCmd.Flags().StringP("message", "m", "", "Email body")
	emailCmd.MarkFlagRequired("user")
	emailCmd.MarkFlagRequired("subject")
	emailCmd.MarkFlagRequired("message")

	rootCmd.AddCommand(emailCmd)
}
