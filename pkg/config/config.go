package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
)

// Config represents pwlaunch's configuration
type Config struct {
	Runner    string `json:"runner"`     // package runner name or path, default npx
	PackageID string `json:"package_id"` // automation tool package, default @playwright/mcp
	Verbose   bool   `json:"verbose"`    // emit resolver details on stderr
}

const (
	defaultRunner    = "npx"
	defaultPackageID = "@playwright/mcp"
)

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Runner:    defaultRunner,
		PackageID: defaultPackageID,
	}
}

// applyDefaults fills empty fields so older or hand-edited files keep working
func (c *Config) applyDefaults() {
	if c.Runner == "" {
		c.Runner = defaultRunner
	}
	if c.PackageID == "" {
		c.PackageID = defaultPackageID
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "pwlaunch", "config.json")
}

// Load reads the config file, returning defaults when it does not exist.
// It never prompts: during a launch stdout belongs to the child.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom reads the config at configPath
func LoadFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// Save saves the config to disk
func Save(cfg *Config) error {
	return SaveTo(GetConfigPath(), cfg)
}

// SaveTo writes cfg to configPath, creating the directory if needed
func SaveTo(configPath string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("failed to save config: nil config")
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// runForm is replaced in tests; huh needs a terminal
var runForm = func(form *huh.Form) error {
	return form.Run()
}

// Edit shows the interactive editor seeded with existing values and saves the result.
// Fields not shown in the form are preserved.
func Edit(configPath string) (*Config, error) {
	existing, err := LoadFrom(configPath)
	if err != nil {
		return nil, err
	}

	updated := *existing
	saveConfig := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Package runner").
				Description("Command used to fetch and run the automation tool (name on PATH or absolute path)").
				Value(&updated.Runner).
				Validate(notEmpty("runner")),

			huh.NewInput().
				Title("Package").
				Description("Automation tool package passed to the runner").
				Value(&updated.PackageID).
				Validate(notEmpty("package")),

			huh.NewConfirm().
				Title("Verbose diagnostics?").
				Description("Log resolver details to stderr on every launch").
				Value(&updated.Verbose).
				Affirmative("Yes").
				Negative("No"),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save configuration?").
				Description(fmt.Sprintf("Save to %s", configPath)).
				Value(&saveConfig).
				Affirmative("Yes").
				Negative("No"),
		),
	)

	if err := runForm(form); err != nil {
		return nil, fmt.Errorf("interactive configure failed: %w", err)
	}

	if !saveConfig {
		return existing, nil
	}

	updated.applyDefaults()
	if err := SaveTo(configPath, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func notEmpty(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}
