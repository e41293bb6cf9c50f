package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/obra/pwlaunch/pkg/launcher"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pwlaunch",
	Short: "Launch the Playwright MCP server with a persistent browser profile",
	Long: `pwlaunch resolves your home directory, points @playwright/mcp at a persistent
profile beneath it, and runs it through npx with your arguments.

Profiles:
  production: ~/.playwright-persistent
  test:       ~/.playwright-persistent-WRAPPERTEST

Configuration:
  Config file: ~/.config/pwlaunch/config.json
  Runner override: PWLAUNCH_RUNNER

Use it from .mcp.json in place of a direct npx invocation:
  "command": "pwlaunch", "args": ["run", "--", "--headless"]`,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *launcher.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
