package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the settings file without starting a session",
	Long:  `Validates the settings file against the drill schema and reports every violation at once.`,
	Run: func(cmd *cobra.Command, _ []string) {
		if _, err := loadSettings(cmd); err != nil {
			exitOnError(err)
		}

		fmt.Println("settings OK")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
