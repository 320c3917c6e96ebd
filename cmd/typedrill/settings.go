package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/0xalexb/typedrill/rawconfig"
	filefetcher "github.com/0xalexb/typedrill/rawconfig/fetcher/file"
	yamlparser "github.com/0xalexb/typedrill/rawconfig/parser/yaml"
	"github.com/0xalexb/typedrill/settings"
	"github.com/0xalexb/typedrill/validate"

	"github.com/spf13/cobra"
)

// loadSettings runs the full persistence boundary: fetch the settings file,
// decode the requested section into a raw mapping, and validate it.
func loadSettings(cmd *cobra.Command) (*settings.Settings, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("reading config flag: %w", err)
	}

	section, err := cmd.Flags().GetString("section")
	if err != nil {
		return nil, fmt.Errorf("reading section flag: %w", err)
	}

	fetcher, err := filefetcher.NewFetcher(configPath)()
	if err != nil {
		return nil, err
	}

	raw, err := rawconfig.Load(yamlparser.NewParser(), fetcher, section)
	if err != nil {
		return nil, err
	}

	return settings.FromRaw(raw, settings.FileProbe)
}

// exitOnError reports a settings failure and terminates the process.
// Validation failures print every violation line followed by the total
// count; anything else prints as a single error line.
func exitOnError(err error) {
	var validationErr *validate.Error

	if errors.As(err, &validationErr) {
		for _, issue := range validationErr.Issues {
			fmt.Fprintln(os.Stderr, issue)
		}

		fmt.Fprintf(os.Stderr, "%d invalid settings\n", len(validationErr.Issues))
		os.Exit(1)
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
