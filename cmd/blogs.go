// ABOUTME: Blog article commands
// ABOUTME: List, get, create, update, delete, and publish status for articles

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mylikerahul/acasa-adminctl/internal/client"
	"github.com/spf13/cobra"
)

var blogsCmd = &cobra.Command{
	Use:   "blogs",
	Short: "Manage blog articles",
}

var (
	blogsListFlags   listFlags
	blogsCreateFile  string
	blogsCreateImage string
	blogsUpdateFile  string
)

var blogsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List articles",
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runList(ctx, os.Stdout, &blogsListFlags, c.ListBlogs,
			[]string{"ID", "TITLE", "AUTHOR", "CATEGORY", "STATUS"},
			func(b *client.Blog) []string {
				return []string{b.ID, b.Title, b.Author, b.Category, b.Status}
			})
	}),
}

var blogsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one article",
	Args:  cobra.ExactArgs(1),
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runGet(ctx, os.Stdout, argAt(0), c.GetBlog, func(b *client.Blog) {
			b.CoverImage = c.ImageURL("blogs", b.CoverImage)
		})
	}),
}

var blogsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an article from a JSON file",
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		if blogsCreateImage != "" {
			return runCreateMultipart(ctx, os.Stdout, c, "blogs", "coverImage",
				blogsCreateFile, blogsCreateImage)
		}
		return runCreate(ctx, os.Stdout, blogsCreateFile, c.CreateBlog)
	}),
}

var blogsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an article from a JSON file",
	Args:  cobra.ExactArgs(1),
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runUpdate(ctx, os.Stdout, argAt(0), blogsUpdateFile, c.UpdateBlog)
	}),
}

var blogsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an article",
	Args:  cobra.ExactArgs(1),
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		if err := c.DeleteBlog(ctx, argAt(0)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
		fmt.Printf("Deleted %s\n", argAt(0))
		return 0
	}),
}

var blogsStatusCmd = &cobra.Command{
	Use:   "status <id> <draft|published>",
	Short: "Set an article's publish status",
	Args:  cobra.ExactArgs(2),
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		status := argAt(1)
		if status != "draft" && status != "published" {
			fmt.Fprintln(os.Stderr, "Error: status must be draft or published")
			return 2
		}
		if err := c.SetBlogStatus(ctx, argAt(0), status); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
		fmt.Printf("Set %s to %s\n", argAt(0), status)
		return 0
	}),
}

func init() {
	addListFlags(blogsListCmd, &blogsListFlags)
	blogsCreateCmd.Flags().StringVarP(&blogsCreateFile, "file", "f", "-", "JSON payload file (- for stdin)")
	blogsCreateCmd.Flags().StringVar(&blogsCreateImage, "image", "", "Cover image to upload (sends multipart)")
	blogsUpdateCmd.Flags().StringVarP(&blogsUpdateFile, "file", "f", "-", "JSON payload file (- for stdin)")

	blogsCmd.AddCommand(blogsListCmd, blogsGetCmd, blogsCreateCmd,
		blogsUpdateCmd, blogsDeleteCmd, blogsStatusCmd)
	rootCmd.AddCommand(blogsCmd)
}
