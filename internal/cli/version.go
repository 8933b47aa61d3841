// SPDX-FileCopyrightText: 2026 fixturemocks
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Version information set via ldflags during build. Values left at their
// defaults are filled from the module build info when available.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var (
	versionShort  bool
	versionFormat string
)

// buildInfo is the resolved version information.
type buildInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform" yaml:"platform"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long: `Print the version, commit hash, build date, and Go version.

Example:
  fixturemocks version            # Human-readable
  fixturemocks version --short    # Version number only
  fixturemocks version -f json    # Machine-readable`,
	RunE: runVersion,
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print the version number only")
	versionCmd.Flags().StringVarP(&versionFormat, "format", "f", "", "output format: json, yaml (default: text)")
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := resolveBuildInfo(debug.ReadBuildInfo)

	if versionShort {
		fmt.Fprintln(cmd.OutOrStdout(), info.Version)
		return nil
	}

	switch versionFormat {
	case "":
		cmd.Printf("fixturemocks %s\n", info.Version)
		cmd.Printf("  Commit:     %s\n", info.Commit)
		cmd.Printf("  Build Date: %s\n", info.BuildDate)
		cmd.Printf("  Go Version: %s\n", info.GoVersion)
		cmd.Printf("  OS/Arch:    %s\n", info.Platform)
		return nil
	case "json":
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	case "yaml":
		data, err := yaml.Marshal(info)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", versionFormat)
	}
}

// resolveBuildInfo merges the ldflags values with the module build info
// returned by read, which is debug.ReadBuildInfo outside tests.
func resolveBuildInfo(read func() (*debug.BuildInfo, bool)) buildInfo {
	info := buildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := read()
	if !ok || bi == nil {
		return info
	}

	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.Commit == "unknown" {
				info.Commit = setting.Value
			}
		case "vcs.time":
			if info.BuildDate == "unknown" {
				info.BuildDate = setting.Value
			}
		}
	}
	return info
}

// GetVersionInfo returns formatted version information.
func GetVersionInfo() string {
	info := resolveBuildInfo(debug.ReadBuildInfo)
	return fmt.Sprintf("fixturemocks %s (commit: %s, built: %s)", info.Version, info.Commit, info.BuildDate)
}
