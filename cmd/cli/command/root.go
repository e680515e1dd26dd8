package command

// root.go defines the root command for the bookstore staff CLI.
// Global flags and token persistence live here.

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	apiURL string // global flag for API server URL
	token  string // authentication token (jwt)
)

var rootCmd = &cobra.Command{
	Use:   "bookstore",
	Short: "bookstore - staff command line interface",
	Long: `bookstore is a tool for library staff to interact with the bookstore API.
Staff can use it to:
- Browse the catalog page by page
- Add books to the catalog
- See who has rented what and when it is due
- Email debtors and other users

Use "bookstore command -h" to see all available commands.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:8080", "API server URL")

	loadToken()
}

type cliConfig struct {
	AccessToken string `json:"access_token"`
}

func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bookstore", "config.json")
}

func loadToken() {
	path := configPath()
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var cfg cliConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return
	}
	token = cfg.AccessToken
}

func saveToken(accessToken string) {
	token = accessToken
	path := configPath()
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return
	}
	data, err := json.Marshal(cliConfig{AccessToken: accessToken})
	if err != nil {
		return
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not save token:", err)
	}
}
