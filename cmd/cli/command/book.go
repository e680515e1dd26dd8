package command

// book.go handles catalog commands for the bookstore CLI.

import (
	"fmt"

	"bookstore/cmd/cli/command/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Catalog commands",
	Long:  `Browse and manage the book catalog. Adding books requires a worker account.`,
}

var bookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog books page by page",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")

		httpClient := client.NewHTTPClient(apiURL)
		httpClient.SetToken(token)
		response, err := httpClient.ListBooks(page)
		if err != nil {
			return fmt.Errorf("could not list books: %w", err)
		}

		color.Cyan("Page %d (%d books total)", response.Page, response.Total)
		for _, book := range response.Data {
			author := book.Author
			if author == "" {
				author = "unknown"
			}
			fmt.Printf("%4d  %-40s  %-20s  %s/%s  price=%d  count=%d\n",
				book.ID, book.Title, author, book.Genre, book.Language, book.Price, book.Count)
		}
		return nil
	},
}

var bookAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a book to the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		var c client.CreateBookRequest
		c.Title, _ = cmd.Flags().GetString("title")
		c.Genre, _ = cmd.Flags().GetString("genre")
		c.Language, _ = cmd.Flags().GetString("language")
		c.Price, _ = cmd.Flags().GetInt64("price")
		c.Count, _ = cmd.Flags().GetInt64("count")
		if cmd.Flags().Changed("author-id") {
			authorID, _ := cmd.Flags().GetInt64("author-id")
			c.AuthorID = &authorID
		}

		httpClient := client.NewHTTPClient(apiURL)
		httpClient.SetToken(token)
		book, err := httpClient.CreateBook(&c)
		if err != nil {
			return fmt.Errorf("could not add book: %w", err)
		}

		color.Green("✓ Added book %d: %s", book.ID, book.Title)
		return nil
	},
}

func init() {
	bookCmd.AddCommand(bookListCmd)
	bookCmd.AddCommand(bookAddCmd)

	bookListCmd.Flags().IntP("page", "n", 1, "Page number to show")

	bookAddCmd.Flags().StringP("title", "t", "", "Book title")
	bookAddCmd.Flags().Int64("author-id", 0, "Author ID (optional)")
	bookAddCmd.Flags().StringP("genre", "g", "", "Genre, e.g. novel or fantasy")
	bookAddCmd.Flags().StringP("language", "l", "", "Language, e.g. english")
	bookAddCmd.Flags().Int64P("price", "p", 0, "Price per copy")
	bookAddCmd.Flags().Int64P("count", "c", 0, "Copies in stock")
	bookAddCmd.MarkFlagRequired("title")
	bookAddCmd.MarkFlagRequired("genre")
	bookAddCmd.MarkFlagRequired("language")
	bookAddCmd.MarkFlagRequired("price")
	bookAddCmd.MarkFlagRequired("count")

	rootCmd.AddCommand(bookCmd)
}
