package cmd

import (
	"fmt"

	"github.com/obra/pwlaunch/pkg/config"
	"github.com/obra/pwlaunch/pkg/npx"
	"github.com/spf13/cobra"
)

var refreshVerbose bool

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch the latest version of the automation tool",
	Long: `Ask the package runner for the latest release of the configured package so the
next launch does not stall on a download.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		client, err := npx.NewClient(cfg.Runner, refreshVerbose || cfg.Verbose)
		if err != nil {
			return fmt.Errorf("failed to resolve package runner: %w", err)
		}

		output, err := client.Run(refreshArgs(cfg.PackageID)...)
		if err != nil {
			return fmt.Errorf("failed to refresh %s: %w\n%s", cfg.PackageID, err, output)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s is at %s", cfg.PackageID, output)
		return nil
	},
}

func refreshArgs(packageID string) []string {
	return []string{"-y", packageID + "@latest", "--version"}
}

func init() {
	rootCmd.AddCommand(refreshCmd)
	refreshCmd.Flags().BoolVarP(&refreshVerbose, "verbose", "v", false, "Show detailed output")
}
