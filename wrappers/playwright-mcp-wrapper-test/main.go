// Command playwright-mcp-wrapper-test runs @playwright/mcp with the test profile,
// forwarding every argument unchanged. It is meant to be referenced from .mcp.json.
package main

import (
	"os"

	"github.com/obra/pwlaunch/cmd"
	"github.com/obra/pwlaunch/pkg/profile"
)

func main() {
	os.Exit(cmd.Wrap(profile.Test, os.Args[1:]))
}
