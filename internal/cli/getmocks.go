// SPDX-FileCopyrightText: 2026 fixturemocks
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fixturemocks/fixturemocks/internal/output"
	"github.com/fixturemocks/fixturemocks/internal/tasks"
	"github.com/fixturemocks/fixturemocks/pkg/types"
)

var (
	getMocksFolder  string
	getMocksAPIPath string
	getMocksNoCache bool
	getMocksFormat  string
	getMocksOutput  string
)

var getMocksCmd = &cobra.Command{
	Use:   "get-mocks",
	Short: "Print the route-interception descriptors for a mocks folder",
	Long: `Run the getMocks task and print the descriptors it resolves to.

Every <verb>[-<alt>].{json,txt} file under <fixtures>/<mocks-folder> becomes
one descriptor, followed by the entries of every options.json manifest.
Scan failures are logged and the descriptors collected before the failure
are still printed.

Example:
  fixturemocks get-mocks                          # JSON to stdout
  fixturemocks get-mocks --mocks-folder stubs     # Scan cypress/fixtures/stubs
  fixturemocks get-mocks --api-path /v2/          # Build /v2/... URLs
  fixturemocks get-mocks -f yaml -o mocks.yaml    # Write YAML to a file`,
	RunE: runGetMocks,
}

func init() {
	getMocksCmd.Flags().StringVar(&getMocksFolder, "mocks-folder", "", "folder under the fixtures root to scan (default: mocks)")
	getMocksCmd.Flags().StringVar(&getMocksAPIPath, "api-path", "", "URL prefix for intercepted routes (default: /api/)")
	getMocksCmd.Flags().BoolVar(&getMocksNoCache, "no-cache", false, "always rescan the mocks folder")
	getMocksCmd.Flags().StringVarP(&getMocksFormat, "format", "f", "", "output format: json, yaml (default: json)")
	getMocksCmd.Flags().StringVarP(&getMocksOutput, "output", "o", "", "output file path (default: stdout)")
}

func runGetMocks(cmd *cobra.Command, args []string) error {
	h, err := newHost()
	if err != nil {
		return err
	}

	out, err := h.registry.Run(cmd.Context(), tasks.GetMocksName, h.taskArgs(getMocksFolder, getMocksAPIPath, getMocksNoCache))
	if err != nil {
		return fmt.Errorf("getMocks failed: %w", err)
	}
	list, ok := out.([]types.Descriptor)
	if !ok {
		return fmt.Errorf("getMocks returned unexpected %T", out)
	}

	printVerbose("Resolved %d descriptors", len(list))

	return writeDescriptors(cmd, list, h.cfg.Format, h.cfg.Output)
}

// writeDescriptors writes list to the output flag's file, the configured
// output file, or stdout, in that order of preference.
func writeDescriptors(cmd *cobra.Command, list []types.Descriptor, cfgFormat, cfgOutput string) error {
	format := getMocksFormat
	if format == "" {
		format = cfgFormat
	}
	path := getMocksOutput
	if path == "" {
		path = cfgOutput
	}

	writer := output.NewWriter()
	if path == "" {
		return writer.Write(list, cmd.OutOrStdout(), format)
	}
	if getMocksFormat == "" && cfgOutput == "" {
		format = output.FormatFromPath(path)
	}
	if err := writer.WriteFile(list, path, format); err != nil {
		return err
	}
	printInfo("Wrote %d descriptors to %s", len(list), path)
	return nil
}
