package main

import (
	"github.com/0xalexb/typedrill"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start a drill session",
	Long:  `Validates the settings file, then plays one drill session against the configured challenge fragment.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cfg, err := loadSettings(cmd)
		if err != nil {
			exitOnError(err)
		}

		level, _ := cmd.Flags().GetString("log-level")
		format, _ := cmd.Flags().GetString("log-format")

		app := typedrill.NewApp(
			typedrill.WithLogLevel(level),
			typedrill.WithLogFormat(format),
			typedrill.WithSettings(cfg),
			typedrill.WithTrainer(),
		)

		app.Run()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
