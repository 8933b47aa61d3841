// SPDX-FileCopyrightText: 2026 fixturemocks
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fixturemocks/fixturemocks/internal/mocks"
	"github.com/fixturemocks/fixturemocks/internal/output"
	"github.com/fixturemocks/fixturemocks/pkg/types"
)

var (
	diffFolder   string
	diffAPIPath  string
	diffExitCode bool
)

var diffCmd = &cobra.Command{
	Use:   "diff [file1] [file2]",
	Short: "Compare descriptor lists by alias",
	Long: `Compare two descriptor lists and show which aliases were added, removed
or now route differently.

If only one file is provided, it is compared against a fresh scan of the
mocks folder. If no files are provided, the configured output file is
compared against a fresh scan.

Removed aliases are reported as breaking, since test code referencing them
will no longer find a route.

Example:
  fixturemocks diff                        # Compare configured output vs scan
  fixturemocks diff mocks.json             # Compare file vs scan
  fixturemocks diff old.json new.yaml      # Compare two files
  fixturemocks diff --exit-code mocks.json # Exit 1 when anything changed`,
	Args: cobra.MaximumNArgs(2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringVar(&diffFolder, "mocks-folder", "", "folder under the fixtures root to scan (default: mocks)")
	diffCmd.Flags().StringVar(&diffAPIPath, "api-path", "", "URL prefix for intercepted routes (default: /api/)")
	diffCmd.Flags().BoolVar(&diffExitCode, "exit-code", false, "exit with code 1 when differences are found")
}

func runDiff(cmd *cobra.Command, args []string) error {
	result, err := diff(args)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), mocks.FormatDiff(result))

	if diffExitCode && !result.IsEmpty() {
		os.Exit(1)
	}
	return nil
}

// diff loads the "before" and "after" lists named by args and compares them.
func diff(args []string) (*mocks.DiffResult, error) {
	if len(args) == 2 {
		printInfo("Comparing %s against %s...", args[0], args[1])
		before, err := output.ReadFile(args[0])
		if err != nil {
			return nil, err
		}
		after, err := output.ReadFile(args[1])
		if err != nil {
			return nil, err
		}
		return mocks.Diff(before, after), nil
	}

	h, err := newHost()
	if err != nil {
		return nil, err
	}

	path := h.cfg.Output
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return nil, errors.New("no descriptor file given and no output configured")
	}

	printInfo("Comparing %s against scan...", path)
	before, err := output.ReadFile(path)
	if err != nil {
		return nil, err
	}

	after, err := scanDescriptors(h)
	if err != nil {
		return nil, err
	}
	return mocks.Diff(before, after), nil
}

// scanDescriptors runs an uncached build; a scan failure is an error here
// since a partial list would report spurious removals.
func scanDescriptors(h *host) ([]types.Descriptor, error) {
	result, err := h.getMocks.Build(h.taskArgs(diffFolder, diffAPIPath, true))
	if err != nil {
		return nil, err
	}
	if result.Err != nil {
		return nil, fmt.Errorf("scan failed after %d descriptors: %w", len(result.Descriptors), result.Err)
	}
	return result.Descriptors, nil
}
