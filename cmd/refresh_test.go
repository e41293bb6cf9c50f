package cmd

import (
	"reflect"
	"testing"
)

func TestRefreshCommand(t *testing.T) {
	if refreshCmd.Use != "refresh" {
		t.Errorf("refresh command Use = %v, want refresh", refreshCmd.Use)
	}

	if refreshCmd.Short == "" {
		t.Error("refresh command should have Short description")
	}

	if refreshCmd.Flags().Lookup("verbose") == nil {
		t.Error("refresh command should have --verbose flag")
	}
}

func TestRefreshArgs(t *testing.T) {
	got := refreshArgs("@playwright/mcp")
	want := []string{"-y", "@playwright/mcp@latest", "--version"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("refreshArgs() = %v, want %v", got, want)
	}
}
