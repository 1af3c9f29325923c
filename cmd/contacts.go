// ABOUTME: Contact enquiry commands
// ABOUTME: List, get, delete, and status for inbound enquiries

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mylikerahul/acasa-adminctl/internal/client"
	"github.com/spf13/cobra"
)

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Manage inbound enquiries",
}

var contactsListFlags listFlags

var contactsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List enquiries",
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runList(ctx, os.Stdout, &contactsListFlags, c.ListContacts,
			[]string{"ID", "NAME", "EMAIL", "SUBJECT", "STATUS"},
			func(ct *client.Contact) []string {
				return []string{ct.ID, ct.Name, ct.Email, ct.Subject, ct.Status}
			})
	}),
}

var contactsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one enquiry",
	Args:  cobra.ExactArgs(1),
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runGet(ctx, os.Stdout, argAt(0), c.GetContact, nil)
	}),
}

var contactsDeleteCmd = &cobra.Command{
	Use:   "delete <id> [id...]",
	Short: "Delete one or more enquiries",
	Args:  cobra.MinimumNArgs(1),
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runDelete(ctx, os.Stdout, commandArgs, c.DeleteContact, c.BulkDeleteContacts)
	}),
}

var contactsStatusCmd = &cobra.Command{
	Use:   "status <id> <new|replied|closed>",
	Short: "Set an enquiry's status",
	Args:  cobra.ExactArgs(2),
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runContactStatus(ctx, c, argAt(0), argAt(1))
	}),
}

// runContactStatus validates the enquiry-specific status values
func runContactStatus(ctx context.Context, c *client.Client, id, status string) int {
	switch status {
	case "new", "replied", "closed":
	default:
		fmt.Fprintln(os.Stderr, "Error: status must be new, replied or closed")
		return 2
	}
	if err := c.SetContactStatus(ctx, id, status); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	fmt.Printf("Set %s to %s\n", id, status)
	return 0
}

func init() {
	addListFlags(contactsListCmd, &contactsListFlags)
	contactsCmd.AddCommand(contactsListCmd, contactsGetCmd, contactsDeleteCmd, contactsStatusCmd)
	rootCmd.AddCommand(contactsCmd)
}
