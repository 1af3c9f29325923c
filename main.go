// ABOUTME: Entry point for the acasa-adminctl CLI
// ABOUTME: Terminal admin console for the Acasa real-estate backend

package main

import (
	"fmt"
	"os"

	"github.com/mylikerahul/acasa-adminctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
