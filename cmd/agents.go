// ABOUTME: Agent management commands
// ABOUTME: List, get, create, update, delete, status, and stats for agents

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/mylikerahul/acasa-adminctl/internal/client"
	"github.com/spf13/cobra"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "Manage listing agents",
}

var (
	agentsListFlags   listFlags
	agentsCreateFile  string
	agentsCreateImage string
	agentsUpdateFile  string
)

var agentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List agents",
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runList(ctx, os.Stdout, &agentsListFlags, c.ListAgents,
			[]string{"ID", "NAME", "EMAIL", "CITY", "STATUS"},
			func(a *client.Agent) []string {
				return []string{a.ID, a.Name, a.Email, a.City, a.Status}
			})
	}),
}

var agentsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one agent",
	Args:  cobra.ExactArgs(1),
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runGet(ctx, os.Stdout, argAt(0), c.GetAgent, func(a *client.Agent) {
			a.Photo = c.ImageURL("agents", a.Photo)
		})
	}),
}

var agentsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an agent from a JSON file",
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		if agentsCreateImage != "" {
			return runCreateMultipart(ctx, os.Stdout, c, "agents", "photo",
				agentsCreateFile, agentsCreateImage)
		}
		return runCreate(ctx, os.Stdout, agentsCreateFile, c.CreateAgent)
	}),
}

var agentsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an agent from a JSON file",
	Args:  cobra.ExactArgs(1),
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runUpdate(ctx, os.Stdout, argAt(0), agentsUpdateFile, c.UpdateAgent)
	}),
}

var agentsDeleteCmd = &cobra.Command{
	Use:   "delete <id> [id...]",
	Short: "Delete one or more agents",
	Args:  cobra.MinimumNArgs(1),
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runDelete(ctx, os.Stdout, commandArgs, c.DeleteAgent, c.BulkDeleteAgents)
	}),
}

var agentsStatusCmd = &cobra.Command{
	Use:   "status <id> <active|inactive>",
	Short: "Set an agent's status",
	Args:  cobra.ExactArgs(2),
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		return runStatus(ctx, os.Stdout, argAt(0), argAt(1), c.SetAgentStatus)
	}),
}

var agentsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show agent counts by status",
	Run: withClient(func(ctx context.Context, c *client.Client) int {
		stats, err := c.AgentStats(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
		if IsJSONOutput() {
			data, _ := json.MarshalIndent(stats, "", "  ")
			fmt.Println(string(data))
			return 0
		}
		printTable(os.Stdout, []string{"TOTAL", "ACTIVE", "INACTIVE"}, [][]string{{
			strconv.Itoa(stats.Total), strconv.Itoa(stats.Active), strconv.Itoa(stats.Inactive),
		}})
		return 0
	}),
}

func init() {
	addListFlags(agentsListCmd, &agentsListFlags)
	agentsCreateCmd.Flags().StringVarP(&agentsCreateFile, "file", "f", "-", "JSON payload file (- for stdin)")
	agentsCreateCmd.Flags().StringVar(&agentsCreateImage, "image", "", "Profile photo to upload (sends multipart)")
	agentsUpdateCmd.Flags().StringVarP(&agentsUpdateFile, "file", "f", "-", "JSON payload file (- for stdin)")

	agentsCmd.AddCommand(agentsListCmd, agentsGetCmd, agentsCreateCmd,
		agentsUpdateCmd, agentsDeleteCmd, agentsStatusCmd, agentsStatsCmd)
	rootCmd.AddCommand(agentsCmd)
}
