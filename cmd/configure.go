package cmd

import (
	"fmt"

	"github.com/obra/pwlaunch/pkg/config"
	"github.com/spf13/cobra"
)

var configureVerbose bool

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Edit pwlaunch configuration",
	Long: `Interactive configuration editor for the package runner and the package it runs.

Values are written to ~/.config/pwlaunch/config.json (or $XDG_CONFIG_HOME/pwlaunch).
PWLAUNCH_RUNNER still overrides the runner at launch time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := config.GetConfigPath()

		if configureVerbose {
			fmt.Fprintf(cmd.OutOrStdout(), "Editing config: %s\n", configPath)
		}

		cfg, err := config.Edit(configPath)
		if err != nil {
			return fmt.Errorf("failed to configure: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\n✓ Runner: %s, package: %s\n", cfg.Runner, cfg.PackageID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configureCmd)
	configureCmd.Flags().BoolVarP(&configureVerbose, "verbose", "v", false, "Show detailed output")
}
