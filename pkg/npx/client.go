package npx

import (
	"fmt"
	"os"
	"os/exec"
)

// DefaultCommand is the package runner used when nothing else is configured
const DefaultCommand = "npx"

// Client handles package runner interactions
type Client struct {
	cmd     string
	path    string
	verbose bool

	lookPath func(string) (string, error)
}

// NewClient resolves the package runner. name comes from config and may be empty.
func NewClient(name string, verbose bool) (*Client, error) {
	client := &Client{verbose: verbose, lookPath: exec.LookPath}
	if err := client.resolve(name); err != nil {
		return nil, err
	}
	return client, nil
}

func (c *Client) resolve(name string) error {
	cmd, err := c.DetectCLI(name)
	if err != nil {
		return err
	}
	path, err := c.lookPath(cmd)
	if err != nil {
		return fmt.Errorf("%s not found in PATH: %w", cmd, err)
	}
	c.cmd = cmd
	c.path = path
	return nil
}

// DetectCLI picks the runner command: PWLAUNCH_RUNNER, then name, then npx
func (c *Client) DetectCLI(name string) (string, error) {
	lookPath := c.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	if envCmd := os.Getenv("PWLAUNCH_RUNNER"); envCmd != "" {
		if _, err := lookPath(envCmd); err != nil {
			return "", fmt.Errorf("PWLAUNCH_RUNNER=%s not found in PATH", envCmd)
		}
		return envCmd, nil
	}

	if name != "" {
		return name, nil
	}

	return DefaultCommand, nil
}

// Run executes the runner and returns its combined output
func (c *Client) Run(args ...string) (string, error) {
	cmd := exec.Command(c.path, args...)

	if c.verbose {
		fmt.Fprintf(os.Stderr, "+ %s %v\n", c.cmd, args)
	}

	output, err := cmd.CombinedOutput()

	if c.verbose && len(output) > 0 {
		fmt.Fprintf(os.Stderr, "%s\n", output)
	}

	return string(output), err
}

// Command returns the runner name as configured, for display
func (c *Client) Command() string {
	return c.cmd
}

// Path returns the resolved executable path
func (c *Client) Path() string {
	return c.path
}
