// ABOUTME: Whoami command for the acasa-adminctl CLI
// ABOUTME: Reports the current session state and decoded identity

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mylikerahul/acasa-adminctl/internal/session"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in admin identity",
	Long:  `Verify the stored session against the backend and print the admin identity.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if exitCode := runWhoami(ctx, os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(ctx context.Context, w io.Writer) int {
	guard, _, _, err := newGuard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	result := guard.Check(ctx)
	if result.State != session.StateAuthenticated {
		fmt.Fprintf(w, "Not logged in (%s)\n", result.Reason)
		return 1
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(map[string]string{
			"id":    result.Claims.ID,
			"name":  result.Claims.Name,
			"email": result.Claims.Email,
			"role":  result.Claims.Role,
		}, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, "Name:   %s\nEmail:  %s\nRole:   %s\n",
		result.Claims.Name, result.Claims.Email, result.Claims.Role)
	return 0
}
