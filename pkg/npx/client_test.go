package npx

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestDetectCLI(t *testing.T) {
	found := func(string) (string, error) { return "/usr/bin/x", nil }
	missing := func(string) (string, error) { return "", errors.New("not found") }

	tests := []struct {
		name     string
		envVar   string
		config   string
		lookPath func(string) (string, error)
		want     string
		wantErr  bool
	}{
		{
			name:     "default npx",
			lookPath: found,
			want:     "npx",
		},
		{
			name:     "configured runner",
			config:   "/opt/node/bin/npx",
			lookPath: found,
			want:     "/opt/node/bin/npx",
		},
		{
			name:     "PWLAUNCH_RUNNER override wins",
			envVar:   "bunx",
			config:   "/opt/node/bin/npx",
			lookPath: found,
			want:     "bunx",
		},
		{
			name:     "PWLAUNCH_RUNNER not in PATH",
			envVar:   "nope",
			lookPath: missing,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PWLAUNCH_RUNNER", tt.envVar)

			client := &Client{lookPath: tt.lookPath}
			cmd, err := client.DetectCLI(tt.config)

			if (err != nil) != tt.wantErr {
				t.Errorf("DetectCLI() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if cmd != tt.want {
				t.Errorf("DetectCLI() = %v, want %v", cmd, tt.want)
			}
		})
	}
}

func TestNewClientUnresolvable(t *testing.T) {
	t.Setenv("PWLAUNCH_RUNNER", "")

	_, err := NewClient(filepath.Join(t.TempDir(), "npx"), false)
	if err == nil {
		t.Error("NewClient() with missing runner should return error")
	}
}

func TestClientRun(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script runner requires unix")
	}
	t.Setenv("PWLAUNCH_RUNNER", "")

	script := filepath.Join(t.TempDir(), "npx")
	if err := os.WriteFile(script, []byte("#!/bin/sh\necho \"$@\"\n"), 0755); err != nil {
		t.Fatalf("Failed to write runner: %v", err)
	}

	client, err := NewClient(script, false)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if client.Path() != script {
		t.Errorf("Path() = %v, want %v", client.Path(), script)
	}

	out, err := client.Run("-y", "@playwright/mcp@latest", "--version")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if strings.TrimSpace(out) != "-y @playwright/mcp@latest --version" {
		t.Errorf("Run() output = %q", out)
	}
}
