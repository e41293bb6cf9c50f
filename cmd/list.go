package cmd

import (
	"fmt"
	"os"

	"github.com/obra/pwlaunch/pkg/profile"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List profile variants and their directories",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to resolve home directory: %w", err)
		}

		for _, line := range formatVariants(homeDir, dirExists) {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

func formatVariants(homeDir string, exists func(string) bool) []string {
	lines := []string{fmt.Sprintf("%-12s %-8s %s", "VARIANT", "STATUS", "PROFILE")}
	for _, v := range profile.Variants() {
		dir := profile.Dir(homeDir, v)
		status := "missing"
		if exists(dir) {
			status = "present"
		}
		lines = append(lines, fmt.Sprintf("%-12s %-8s %s", v.Name, status, dir))
	}
	return lines
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func variantNames() string {
	names := ""
	for i, v := range profile.Variants() {
		if i > 0 {
			names += ", "
		}
		names += v.Name
	}
	return names
}

func init() {
	rootCmd.AddCommand(listCmd)
}
