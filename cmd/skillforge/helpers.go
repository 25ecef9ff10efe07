// Package main provides shared helper functions for CLI commands.
package main

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback for edge cases
		if runtime.GOOS == "windows" {
			home = os.Getenv("USERPROFILE")
		} else {
			home = os.Getenv("HOME")
		}
	}

	return filepath.Join(home, path[1:])
}

// jsonOutput reports whether the global --json flag was set.
func jsonOutput(cmd *cobra.Command) bool {
	global, _ := cmd.Root().PersistentFlags().GetBool("json")
	return global
}
