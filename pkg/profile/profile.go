package profile

import (
	"fmt"
	"path/filepath"
)

// Variant distinguishes a launcher configuration by its profile suffix and diagnostic tag
type Variant struct {
	Name   string
	Suffix string // directory name joined onto the home directory
	Tag    string // prefix for diagnostic lines, e.g. "[playwright-mcp-wrapper]"
}

var (
	// Production is the persistent profile used by normal MCP sessions
	Production = Variant{
		Name:   "production",
		Suffix: ".playwright-persistent",
		Tag:    "playwright-mcp-wrapper",
	}

	// Test keeps its own profile so a wrapper check never touches the real session
	Test = Variant{
		Name:   "test",
		Suffix: ".playwright-persistent-WRAPPERTEST",
		Tag:    "playwright-mcp-wrapper-test",
	}
)

// Variants returns all built-in variants
func Variants() []Variant {
	return []Variant{Production, Test}
}

// Lookup returns the variant with the given name
func Lookup(name string) (Variant, error) {
	if name == "" {
		return Production, nil
	}
	for _, v := range Variants() {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("unknown variant: %s (valid: production, test)", name)
}

// Dir returns the profile directory for a variant under homeDir.
// Nothing is created on disk.
func Dir(homeDir string, v Variant) string {
	return filepath.Join(homeDir, v.Suffix)
}
