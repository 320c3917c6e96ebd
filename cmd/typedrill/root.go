package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "typedrill",
	Short: "typedrill is a text-fragment training tool",
	Long: `typedrill drills short text fragments from a challenge file.
Settings are validated against a fixed schema before a session starts; every
problem with the settings file is reported at once.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "drill.yaml", "Path to the settings file")
	rootCmd.PersistentFlags().String("section", "", "Settings file section holding the drill settings (colon-separated)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "json", "Log format: json, text")
}
