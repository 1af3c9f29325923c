// ABOUTME: Root command for the acasa-adminctl CLI
// ABOUTME: Handles global flags, configuration, and shared client wiring

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/mylikerahul/acasa-adminctl/internal/client"
	"github.com/mylikerahul/acasa-adminctl/internal/config"
	"github.com/mylikerahul/acasa-adminctl/internal/session"
	"github.com/mylikerahul/acasa-adminctl/internal/token"
	"github.com/spf13/cobra"
)

var (
	apiURL     string
	jsonOutput bool
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "acasa-adminctl",
	Short: "Admin console for the Acasa real-estate backend",
	Long: `acasa-adminctl is a terminal admin console for the Acasa real-estate API.

It manages agents, properties, developers, deals, contacts, blogs and
subscribers through the backend's admin endpoints, with an interactive
TUI and scriptable subcommands for CI use.

Environment Variables:
  ACASA_API_URL           Backend API URL (default: http://localhost:5000)
  ACASA_CREDENTIALS_PATH  Token file location (default: ~/.config/acasa-adminctl/credentials.json)`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides ACASA_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("ACASA_API_URL"); envURL != "" {
		return envURL
	}
	return config.DefaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// newAPIClient wires the token store and API client from configuration.
// The unauthorized hook prints a one-line notice so scripted callers see
// why a command suddenly requires a fresh login.
func newAPIClient() (*client.Client, *token.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	store := token.NewStore(cfg.CredentialsPath)
	c := client.New(GetAPIURL(), store,
		client.WithTimeout(time.Duration(cfg.RequestTimeout)*time.Second),
		client.OnUnauthorized(func() {
			fmt.Fprintln(os.Stderr, "Session expired. Run 'acasa-adminctl login' to continue.")
		}),
	)
	return c, store, nil
}

// newGuard builds the session guard over a fresh client/store pair
func newGuard() (*session.Guard, *client.Client, *token.Store, error) {
	c, store, err := newAPIClient()
	if err != nil {
		return nil, nil, nil, err
	}
	return session.NewGuard(store, c), c, store, nil
}
