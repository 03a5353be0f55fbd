// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-07-21
// Last Modified: 2026-08-24

// Package commands wires the crsweep CLI commands.
package commands

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd is the base command all subcommands attach to.
var rootCmd = &cobra.Command{
	Use:   "crsweep",
	Short: "Close completed change-request issues",
	Long: `crsweep scans open change-request issues in a GitHub repository and
closes the ones whose labels, comment checklist, and (optionally)
project-board status indicate the change is complete.

Environment variables:
  GITHUB_TOKEN           Required. Token with issues:write permission.
  REPO                   Repository in owner/name format
                         (falls back to GITHUB_REPOSITORY).
  CHECK_PROJECT_STATUS   Optional. Enables the project-status gate.`,
	Version: "0.3.0",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a crsweep config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}
