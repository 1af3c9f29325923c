// ABOUTME: Logout command for the acasa-adminctl CLI
// ABOUTME: Clears stored credentials and notifies the backend best-effort

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear stored credentials",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		c, store, err := newAPIClient()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}

		// Server-side logout is best-effort; the local token is cleared
		// regardless so a dead backend cannot pin a session.
		if store.AdminToken() != "" {
			_ = c.Logout(ctx)
		}
		store.LogoutAll()
		fmt.Println("Logged out")
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
