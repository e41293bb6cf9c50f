// Command playwright-mcp-wrapper runs @playwright/mcp with the production profile,
// forwarding every argument unchanged. It is meant to be referenced from .mcp.json.
package main

import (
	"os"

	"github.com/obra/pwlaunch/cmd"
	"github.com/obra/pwlaunch/pkg/profile"
)

func main() {
	os.Exit(cmd.Wrap(profile.Production, os.Args[1:]))
}
