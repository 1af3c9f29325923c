// ABOUTME: Newsletter subscriber commands
// ABOUTME: List and delete for newsletter signups

package cmd

import (
	"context"
	"os"

	"github.com/mylikerahul/acasa-adminctl/internal/client"
	"github.com/spf13/cobra"
)

var subscribersCmd = &cobra.Command{
	Use:     "subscribers",
	Aliases: []string{"subs"},
	Short:   "Manage newsletter subscribers",
}

var subscribersListFlags listFlags

var subscribersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subscribers",
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runList(ctx, os.Stdout, &subscribersListFlags, c.ListSubscribers,
			[]string{"ID", "EMAIL", "SOURCE", "STATUS"},
			func(s *client.Subscriber) []string {
				return []string{s.ID, s.Email, s.Source, s.Status}
			})
	}),
}

var subscribersDeleteCmd = &cobra.Command{
	Use:   "delete <id> [id...]",
	Short: "Delete one or more subscribers",
	Args:  cobra.MinimumNArgs(1),
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runDelete(ctx, os.Stdout, commandArgs, c.DeleteSubscriber, c.BulkDeleteSubscribers)
	}),
}

func init() {
	addListFlags(subscribersListCmd, &subscribersListFlags)
	subscribersCmd.AddCommand(subscribersListCmd, subscribersDeleteCmd)
	rootCmd.AddCommand(subscribersCmd)
}
