// ABOUTME: Site settings commands
// ABOUTME: Show and update the singleton site configuration record

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mylikerahul/acasa-adminctl/internal/client"
	"github.com/mylikerahul/acasa-adminctl/internal/config"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage site settings",
}

var settingsUpdateFile string

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current site settings",
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
		sc := client.NewSettingsClient(c, time.Duration(cfg.SettingsTTL)*time.Second)
		defer sc.Close()

		settings, err := sc.Get(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
		data, _ := json.MarshalIndent(settings, "", "  ")
		fmt.Println(string(data))
		return 0
	}),
}

var settingsUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update site settings from a JSON file",
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		payload, code := decodePayload[client.SiteSettings](settingsUpdateFile)
		if code != 0 {
			return code
		}
		updated, err := c.UpdateSettings(ctx, payload)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
		data, _ := json.MarshalIndent(updated, "", "  ")
		fmt.Println(string(data))
		return 0
	}),
}

func init() {
	settingsUpdateCmd.Flags().StringVarP(&settingsUpdateFile, "file", "f", "-", "JSON payload file (- for stdin)")
	settingsCmd.AddCommand(settingsShowCmd, settingsUpdateCmd)
	rootCmd.AddCommand(settingsCmd)
}
