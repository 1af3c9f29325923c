// ABOUTME: Property management commands
// ABOUTME: List, get, create, update, delete, and status for listings

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mylikerahul/acasa-adminctl/internal/client"
	"github.com/spf13/cobra"
)

var propertiesCmd = &cobra.Command{
	Use:     "properties",
	Aliases: []string{"props"},
	Short:   "Manage property listings",
}

var (
	propertiesListFlags   listFlags
	propertiesCreateFile  string
	propertiesCreateImage string
	propertiesUpdateFile  string
)

var propertiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List properties",
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runList(ctx, os.Stdout, &propertiesListFlags, c.ListProperties,
			[]string{"ID", "TITLE", "TYPE", "CITY", "PRICE", "STATUS"},
			func(p *client.Property) []string {
				return []string{p.ID, p.Title, p.Type, p.City,
					fmt.Sprintf("%.0f", p.Price), p.Status}
			})
	}),
}

var propertiesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one property",
	Args:  cobra.ExactArgs(1),
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runGet(ctx, os.Stdout, argAt(0), c.GetProperty, func(p *client.Property) {
			for i := range p.Images {
				p.Images[i] = c.ImageURL("properties", p.Images[i])
			}
		})
	}),
}

var propertiesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a property from a JSON file",
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		if propertiesCreateImage != "" {
			return runCreateMultipart(ctx, os.Stdout, c, "properties", "image",
				propertiesCreateFile, propertiesCreateImage)
		}
		return runCreate(ctx, os.Stdout, propertiesCreateFile, c.CreateProperty)
	}),
}

var propertiesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a property from a JSON file",
	Args:  cobra.ExactArgs(1),
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runUpdate(ctx, os.Stdout, argAt(0), propertiesUpdateFile, c.UpdateProperty)
	}),
}

var propertiesDeleteCmd = &cobra.Command{
	Use:   "delete <id> [id...]",
	Short: "Delete one or more properties",
	Args:  cobra.MinimumNArgs(1),
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runDelete(ctx, os.Stdout, commandArgs, c.DeleteProperty, c.BulkDeleteProperties)
	}),
}

var propertiesStatusCmd = &cobra.Command{
	Use:   "status <id> <active|inactive>",
	Short: "Set a property's status",
	Args:  cobra.ExactArgs(2),
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runStatus(ctx, os.Stdout, argAt(0), argAt(1), c.SetPropertyStatus)
	}),
}

func init() {
	addListFlags(propertiesListCmd, &propertiesListFlags)
	propertiesCreateCmd.Flags().StringVarP(&propertiesCreateFile, "file", "f", "-", "JSON payload file (- for stdin)")
	propertiesCreateCmd.Flags().StringVar(&propertiesCreateImage, "image", "", "Listing image to upload (sends multipart)")
	propertiesUpdateCmd.Flags().StringVarP(&propertiesUpdateFile, "file", "f", "-", "JSON payload file (- for stdin)")

	propertiesCmd.AddCommand(propertiesListCmd, propertiesGetCmd, propertiesCreateCmd,
		propertiesUpdateCmd, propertiesDeleteCmd, propertiesStatusCmd)
	rootCmd.AddCommand(propertiesCmd)
}
