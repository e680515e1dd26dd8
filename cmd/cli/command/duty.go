package command

// duty.go shows the rental duty report: who has which books and when they are due.

import (
	"fmt"

	"bookstore/cmd/cli/command/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var dutyCmd = &cobra.Command{
	Use:   "duty",
	Short: "Show rented books grouped by user",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient := client.NewHTTPClient(apiURL)
		httpClient.SetToken(token)
		response, err := httpClient.Duty()
		if err != nil {
			return fmt.Errorf("could not fetch duty report: %w", err)
		}

		if len(response.Users) == 0 {
			fmt.Println("No books are rented out right now.")
			return nil
		}

		for username, rents := range response.Users {
			color.Cyan("%s:", username)
			for _, rent := range rents {
				line := fmt.Sprintf("  %-40s due %s (%d days left)", rent.BookTitle, rent.DateReturn, rent.DaysRemaining)
				if rent.DaysRemaining < 0 {
					color.Red("%s", line)
				} else {
					fmt.Println(line)
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dutyCmd)
}
