package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/fsnotify/fsnotify"
	"github.com/obra/pwlaunch/pkg/profile"
	"github.com/spf13/cobra"
)

var (
	profileVariant string
	profileYes     bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect or reset the persistent browser profile",
}

var profilePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the profile directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := profileDir()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), dir)
		return nil
	},
}

var profileWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream filesystem changes in the profile directory",
	Long: `Print every create, write, remove, rename and chmod under the top level of the
profile directory until interrupted. Useful to see what the browser persists
between sessions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := profileDir()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Watching %s\n", dir)
		return profile.Watch(ctx, dir, func(e fsnotify.Event) {
			fmt.Fprintf(out, "%-8s %s\n", e.Op, e.Name)
		})
	},
}

var profileCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete the profile directory",
	Long:  `Remove the persistent profile so the next launch starts with a fresh browser session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := profileDir()
		if err != nil {
			return err
		}

		if !dirExists(dir) {
			fmt.Fprintf(cmd.OutOrStdout(), "No profile at %s\n", dir)
			return nil
		}

		if !profileYes {
			confirmed := false
			err := huh.NewConfirm().
				Title(fmt.Sprintf("Delete %s?", dir)).
				Description("Saved logins and browser state will be lost").
				Affirmative("Delete").
				Negative("Cancel").
				Value(&confirmed).
				Run()
			if err != nil {
				return fmt.Errorf("confirmation failed: %w", err)
			}
			if !confirmed {
				return nil
			}
		}

		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to remove profile: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", dir)
		return nil
	},
}

func profileDir() (string, error) {
	variant, err := profile.Lookup(profileVariant)
	if err != nil {
		return "", err
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return profile.Dir(homeDir, variant), nil
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profilePathCmd, profileWatchCmd, profileCleanCmd)

	profileCmd.PersistentFlags().StringVar(&profileVariant, "variant", "production", fmt.Sprintf("Profile variant (%s)", variantNames()))
	profileCleanCmd.Flags().BoolVarP(&profileYes, "yes", "y", false, "Delete without asking")
}
