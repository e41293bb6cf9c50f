package cmd

import (
	"fmt"
	"os"

	"github.com/obra/pwlaunch/pkg/config"
	"github.com/obra/pwlaunch/pkg/diag"
	"github.com/obra/pwlaunch/pkg/launcher"
	"github.com/obra/pwlaunch/pkg/profile"
	"github.com/spf13/cobra"
)

var (
	runVariant string
	runVerbose bool
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [--] [args...]",
	Short: "Run @playwright/mcp with the persistent profile",
	Long: `Run the Playwright MCP server through the package runner. Every argument
after the flags is forwarded verbatim; put -- before arguments that start with a dash.

The exit code is the server's own, or 1 if it could not start or was killed by a signal.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		variant, err := profile.Lookup(runVariant)
		if err != nil {
			return err
		}

		if code := launch(variant, args, runVerbose); code != 0 {
			return &launcher.ExitError{Code: code}
		}
		return nil
	},
}

// Wrap runs the launcher for a fixed variant with every argument forwarded.
// The wrapper binaries call it directly so no flags are parsed.
func Wrap(variant profile.Variant, args []string) int {
	return launch(variant, args, false)
}

func launch(variant profile.Variant, args []string, verbose bool) int {
	logger := diag.New(os.Stderr, variant.Tag, false)

	cfg, err := config.Load()
	if err != nil {
		logger.Infof("Failed to load config: %v", err)
		return 1
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		logger.Infof("Failed to resolve home directory: %v", err)
		return 1
	}

	return launcher.Run(&launcher.Config{
		Variant:   variant,
		HomeDir:   homeDir,
		PackageID: cfg.PackageID,
		Runner:    cfg.Runner,
		Args:      args,
		Verbose:   verbose || cfg.Verbose,
	})
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Stop flag parsing at the first positional argument so it and the rest pass through
	runCmd.Flags().SetInterspersed(false)

	runCmd.Flags().StringVar(&runVariant, "variant", "production", fmt.Sprintf("Profile variant (%s)", variantNames()))
	runCmd.Flags().BoolVar(&runVerbose, "verbose", false, "Show runner resolution details")
}
