// SPDX-FileCopyrightText: 2026 fixturemocks
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fixturemocks/fixturemocks/internal/mocks"
)

// Exit codes for check command
const (
	ExitCodeOK         = 0 // Mocks scanned cleanly with unique aliases
	ExitCodeIssues     = 1 // Duplicate aliases found
	ExitCodeCheckError = 2 // Scan or config failure
)

var (
	checkFolder  string
	checkAPIPath string
	checkCI      bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that mocks scan cleanly and aliases are unique",
	Long: `Check scans the mocks folder and reports problems that getMocks itself
swallows: unreadable folders, malformed options.json manifests, and aliases
defined more than once (test code can only reach one route per alias).

Exit codes:
  0  No problems
  1  Duplicate aliases
  2  Scan or configuration failure

Example:
  fixturemocks check                      # Check cypress/fixtures/mocks
  fixturemocks check --mocks-folder stubs # Check another folder
  fixturemocks check --ci                 # CI mode with exit codes`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkFolder, "mocks-folder", "", "folder under the fixtures root to check (default: mocks)")
	checkCmd.Flags().StringVar(&checkAPIPath, "api-path", "", "URL prefix for intercepted routes (default: /api/)")
	checkCmd.Flags().BoolVar(&checkCI, "ci", false, "CI mode: use exit codes for status")
}

func runCheck(cmd *cobra.Command, args []string) error {
	code, err := check()
	if checkCI && code != ExitCodeOK {
		if err != nil {
			printError("%v", err)
		}
		os.Exit(code)
	}
	return err
}

// check runs the scan and returns the exit code with the error to report.
func check() (int, error) {
	h, err := newHost()
	if err != nil {
		return ExitCodeCheckError, err
	}

	result, err := h.getMocks.Build(h.taskArgs(checkFolder, checkAPIPath, true))
	if err != nil {
		return ExitCodeCheckError, err
	}
	if result.Err != nil {
		return ExitCodeCheckError, fmt.Errorf("scan failed after %d descriptors: %w", len(result.Descriptors), result.Err)
	}

	issues := mocks.Validate(result.Descriptors)
	if len(issues) == 0 {
		printInfo("%d mocks, all aliases unique", len(result.Descriptors))
		return ExitCodeOK, nil
	}

	printInfo("Duplicate aliases:")
	for _, issue := range issues {
		printInfo("  %s", issue)
	}
	return ExitCodeIssues, fmt.Errorf("%d duplicate aliases", len(issues))
}
