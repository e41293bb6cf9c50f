package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/obra/pwlaunch/pkg/diag"
	"github.com/obra/pwlaunch/pkg/npx"
	"github.com/obra/pwlaunch/pkg/profile"
)

// DefaultPackage is the automation tool fetched by the package runner
const DefaultPackage = "@playwright/mcp"

// Config describes one launch
type Config struct {
	Variant   profile.Variant
	HomeDir   string
	PackageID string
	Runner    string // runner name or path from config; empty means npx
	Args      []string
	Verbose   bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// ExitError carries a non-zero launch status back to main
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exited with code %d", e.Code)
}

// BuildArgs returns the runner arguments: the four fixed tokens followed by callerArgs in order
func BuildArgs(packageID, profileDir string, callerArgs []string) []string {
	args := make([]string, 0, 4+len(callerArgs))
	args = append(args, "-y", packageID, "--user-data-dir", profileDir)
	return append(args, callerArgs...)
}

// Run launches the automation tool and returns the exit code this process should use.
// It never retries: a start failure or a signaled child both yield 1.
func Run(config *Config) int {
	stderr := config.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	logger := diag.New(stderr, config.Variant.Tag, config.Verbose)

	packageID := config.PackageID
	if packageID == "" {
		packageID = DefaultPackage
	}

	profileDir := profile.Dir(config.HomeDir, config.Variant)
	args := BuildArgs(packageID, profileDir, config.Args)

	client, resolveErr := npx.NewClient(config.Runner, config.Verbose)
	display := config.Runner
	if client != nil {
		display = client.Command()
	} else if display == "" {
		display = npx.DefaultCommand
	}

	logger.Infof("Home directory: %s", config.HomeDir)
	logger.Infof("Profile directory: %s", profileDir)
	logger.Infof("Spawning: %s %s", display, strings.Join(args, " "))

	if resolveErr != nil {
		logger.Infof("Failed to start process: %v", resolveErr)
		return 1
	}
	logger.Debugf("+ %s", client.Path())

	cmd := exec.Command(client.Path(), args...)
	cmd.Stdin = orDefault(config.Stdin, os.Stdin)
	cmd.Stdout = orDefaultWriter(config.Stdout, os.Stdout)
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		logger.Infof("Failed to start process: %v", err)
		return 1
	}

	return exitStatus(cmd.Wait(), logger)
}

// exitStatus maps the child's termination to our own exit code
func exitStatus(err error, logger *log.Logger) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		// Wait failed before the child reported anything, e.g. an I/O copy error
		logger.Infof("Failed to start process: %v", err)
		return 1
	}

	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		logger.Infof("Process killed by signal: %s", signalName(status.Signal()))
		return 1
	}

	if code := exitErr.ExitCode(); code > 0 {
		return code
	}
	return 0
}

func orDefault(r io.Reader, def *os.File) io.Reader {
	if r == nil {
		return def
	}
	return r
}

func orDefaultWriter(w io.Writer, def *os.File) io.Writer {
	if w == nil {
		return def
	}
	return w
}
