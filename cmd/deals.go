// ABOUTME: Deal pipeline commands
// ABOUTME: List, get, create, update, and delete for transaction records

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mylikerahul/acasa-adminctl/internal/client"
	"github.com/spf13/cobra"
)

var dealsCmd = &cobra.Command{
	Use:   "deals",
	Short: "Manage the deal pipeline",
}

var (
	dealsListFlags  listFlags
	dealsCreateFile string
	dealsUpdateFile string
	dealsStage      string
)

var dealsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List deals",
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		fetch := func(ctx context.Context, q client.ListQuery) (*client.Page[client.Deal], error) {
			if dealsStage != "" {
				q.Filters = map[string]string{"stage": dealsStage}
			}
			return c.ListDeals(ctx, q)
		}
		return runList(ctx, os.Stdout, &dealsListFlags, fetch,
			[]string{"ID", "TITLE", "CLIENT", "AMOUNT", "STAGE"},
			func(d *client.Deal) []string {
				return []string{d.ID, d.Title, d.ClientName,
					fmt.Sprintf("%.0f", d.Amount), d.Stage}
			})
	}),
}

var dealsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one deal",
	Args:  cobra.ExactArgs(1),
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runGet(ctx, os.Stdout, argAt(0), c.GetDeal, nil)
	}),
}

var dealsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a deal from a JSON file",
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runCreate(ctx, os.Stdout, dealsCreateFile, c.CreateDeal)
	}),
}

var dealsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a deal from a JSON file",
	Args:  cobra.ExactArgs(1),
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runUpdate(ctx, os.Stdout, argAt(0), dealsUpdateFile, c.UpdateDeal)
	}),
}

var dealsDeleteCmd = &cobra.Command{
	Use:   "delete <id> [id...]",
	Short: "Delete one or more deals",
	Args:  cobra.MinimumNArgs(1),
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runDelete(ctx, os.Stdout, commandArgs, c.DeleteDeal, c.BulkDeleteDeals)
	}),
}

func init() {
	addListFlags(dealsListCmd, &dealsListFlags)
	dealsListCmd.Flags().StringVar(&dealsStage, "stage", "", "Filter by pipeline stage (lead, negotiation, closed, lost)")
	dealsCreateCmd.Flags().StringVarP(&dealsCreateFile, "file", "f", "-", "JSON payload file (- for stdin)")
	dealsUpdateCmd.Flags().StringVarP(&dealsUpdateFile, "file", "f", "-", "JSON payload file (- for stdin)")

	dealsCmd.AddCommand(dealsListCmd, dealsGetCmd, dealsCreateCmd,
		dealsUpdateCmd, dealsDeleteCmd)
	rootCmd.AddCommand(dealsCmd)
}
