package main

import (
	"fmt"

	"github.com/0xalexb/typedrill"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("typedrill %s (compiled %s)\n", typedrill.Version, typedrill.CompiledAt)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
