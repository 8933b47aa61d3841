// SPDX-FileCopyrightText: 2026 fixturemocks
// SPDX-License-Identifier: FSL-1.1-MIT

// Package cli provides the command-line interface for fixturemocks.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile  string
	fixtures string
	verbose  bool
	quiet    bool
)

// infoOut receives human-readable messages; stdout is reserved for descriptors.
var infoOut io.Writer = os.Stderr

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fixturemocks",
	Short: "Mock fixture discovery for browser test runners",
	Long: `fixturemocks discovers mock-response fixture files and turns them into
route-interception descriptors (method, URL pattern, alias, response) that a
browser test runner registers before a test suite runs.

Fixture files follow the <verb>[-<alt>].{json,txt} naming convention, where
verb is one of get, post, put or delete. A "__" in a path segment stands for
a "*" wildcard. options.json manifests add explicit descriptors.

Example:
  fixturemocks get-mocks                  # Print descriptors for cypress/fixtures/mocks
  fixturemocks get-mocks -f yaml          # Print descriptors as YAML
  fixturemocks check                      # Fail on duplicate aliases
  fixturemocks diff mocks.json            # Compare a saved list against the scan
  fixturemocks watch -o mocks.json        # Rewrite mocks.json on every change
  fixturemocks init                       # Create a config file`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: fixturemocks.yaml)")
	rootCmd.PersistentFlags().StringVar(&fixtures, "fixtures", "", "fixtures root folder (default: cypress/fixtures)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(getMocksCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(diffCmd)
}

// IsVerbose returns whether verbose output is enabled.
func IsVerbose() bool {
	return verbose
}

// IsQuiet returns whether quiet mode is enabled.
func IsQuiet() bool {
	return quiet
}

// printInfo prints a message if not in quiet mode.
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(infoOut, format+"\n", args...)
	}
}

// printVerbose prints a message if verbose mode is enabled.
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(infoOut, format+"\n", args...)
	}
}

// printError prints an error message.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(infoOut, "Error: "+format+"\n", args...)
}
