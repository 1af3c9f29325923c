// ABOUTME: Health command for the acasa-adminctl CLI
// ABOUTME: Probes backend reachability with CI-friendly exit codes

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mylikerahul/acasa-adminctl/internal/client"
	"github.com/mylikerahul/acasa-adminctl/internal/token"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend connectivity",
	Long:  `Check connectivity to the Acasa backend. Exits 0 when reachable, 2 on transport failure.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if exitCode := runHealth(ctx, os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

// runHealth executes the reachability probe and returns the exit code
func runHealth(ctx context.Context, w io.Writer) int {
	url := GetAPIURL()
	// The probe is unauthenticated, so an empty token store is fine.
	c := client.New(url, token.NewStore(""), client.WithTimeout(10*time.Second))

	start := time.Now()
	err := c.Ping(ctx)
	elapsed := time.Since(start).Round(time.Millisecond)

	if err != nil {
		if IsJSONOutput() {
			data, _ := json.MarshalIndent(map[string]any{
				"backend": url, "reachable": false, "error": err.Error(),
			}, "", "  ")
			fmt.Fprintln(w, string(data))
		} else {
			fmt.Fprintf(w, "Backend:   %s\nReachable: no\nError:     %v\n", url, err)
		}
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(map[string]any{
			"backend": url, "reachable": true, "latency_ms": elapsed.Milliseconds(),
		}, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintf(w, "Backend:   %s\nReachable: yes\nLatency:   %s\n", url, elapsed)
	}
	return 0
}
