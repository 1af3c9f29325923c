// ABOUTME: TUI command for the acasa-adminctl CLI
// ABOUTME: Launches the interactive admin console

package cmd

import (
	"fmt"
	"os"

	"github.com/mylikerahul/acasa-adminctl/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive admin console",
	Long:  `Open the full-screen admin console for browsing and editing every section.`,
	Run: func(cmd *cobra.Command, args []string) {
		guard, c, store, err := newGuard()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}

		if err := tui.Run(c, store, guard); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
