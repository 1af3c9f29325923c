// ABOUTME: Developer management commands
// ABOUTME: List, get, create, update, delete, and status for developer profiles

package cmd

import (
	"context"
	"os"

	"github.com/mylikerahul/acasa-adminctl/internal/client"
	"github.com/spf13/cobra"
)

var developersCmd = &cobra.Command{
	Use:     "developers",
	Aliases: []string{"devs"},
	Short:   "Manage property developers",
}

var (
	developersListFlags  listFlags
	developersCreateFile string
	developersUpdateFile string
)

var developersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List developers",
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runList(ctx, os.Stdout, &developersListFlags, c.ListDevelopers,
			[]string{"ID", "NAME", "EMAIL", "CITY", "STATUS"},
			func(d *client.Developer) []string {
				return []string{d.ID, d.Name, d.Email, d.City, d.Status}
			})
	}),
}

var developersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one developer",
	Args:  cobra.ExactArgs(1),
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runGet(ctx, os.Stdout, argAt(0), c.GetDeveloper, func(d *client.Developer) {
			d.Logo = c.ImageURL("developers", d.Logo)
		})
	}),
}

var developersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a developer from a JSON file",
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runCreate(ctx, os.Stdout, developersCreateFile, c.CreateDeveloper)
	}),
}

var developersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a developer from a JSON file",
	Args:  cobra.ExactArgs(1),
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runUpdate(ctx, os.Stdout, argAt(0), developersUpdateFile, c.UpdateDeveloper)
	}),
}

var developersDeleteCmd = &cobra.Command{
	Use:   "delete <id> [id...]",
	Short: "Delete one or more developers",
	Args:  cobra.MinimumNArgs(1),
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runDelete(ctx, os.Stdout, commandArgs, c.DeleteDeveloper, c.BulkDeleteDevelopers)
	}),
}

var developersStatusCmd = &cobra.Command{
	Use:   "status <id> <active|inactive>",
	Short: "Set a developer's status",
	Args:  cobra.ExactArgs(2),
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runStatus(ctx, os.Stdout, argAt(0), argAt(1), c.SetDeveloperStatus)
	}),
}

func init() {
	addListFlags(developersListCmd, &developersListFlags)
	developersCreateCmd.Flags().StringVarP(&developersCreateFile, "file", "f", "-", "JSON payload file (- for stdin)")
	developersUpdateCmd.Flags().StringVarP(&developersUpdateFile, "file", "f", "-", "JSON payload file (- for stdin)")

	developersCmd.AddCommand(developersListCmd, developersGetCmd, developersCreateCmd,
		developersUpdateCmd, developersDeleteCmd, developersStatusCmd)
	rootCmd.AddCommand(developersCmd)
}
