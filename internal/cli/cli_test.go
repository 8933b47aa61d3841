// SPDX-FileCopyrightText: 2026 fixturemocks
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs a command and returns output and error.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	resetFlags(root)

	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

// resetFlags restores every flag (and its bound variable) to its default,
// since cobra keeps parsed values between Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// setupProject creates a project directory with the given files, makes it
// the working directory and silences info output.
func setupProject(t *testing.T, files map[string]string) string {
	t.Helper()

	tmpDir := t.TempDir()
	for path, content := range files {
		fullPath := filepath.Join(tmpDir, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
		require.NoError(t, os.WriteFile(fullPath, []byte(content), 0o644))
	}

	originalDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(originalDir) })
	require.NoError(t, os.Chdir(tmpDir))

	originalOut := infoOut
	infoOut = io.Discard
	t.Cleanup(func() { infoOut = originalOut })

	return tmpDir
}

func TestRootCommand_Help(t *testing.T) {
	output, err := executeCommand(rootCmd, "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "fixturemocks")
	assert.Contains(t, output, "route-interception descriptors")
	assert.Contains(t, output, "Available Commands")
	assert.Contains(t, output, "get-mocks")
	assert.Contains(t, output, "check")
	assert.Contains(t, output, "watch")
	assert.Contains(t, output, "diff")
	assert.Contains(t, output, "init")
	assert.Contains(t, output, "version")
}

func TestRootCommand_GlobalFlags(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		expected string
	}{
		{name: "config flag short", flag: "-c", expected: "config file"},
		{name: "config flag long", flag: "--config", expected: "config file"},
		{name: "fixtures flag", flag: "--fixtures", expected: "fixtures root folder"},
		{name: "verbose flag short", flag: "-v", expected: "verbose output"},
		{name: "verbose flag long", flag: "--verbose", expected: "verbose output"},
		{name: "quiet flag short", flag: "-q", expected: "suppress"},
		{name: "quiet flag long", flag: "--quiet", expected: "suppress"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := executeCommand(rootCmd, "--help")
			require.NoError(t, err)

			assert.Contains(t, output, tt.flag)
			assert.Contains(t, output, tt.expected)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	output, err := executeCommand(rootCmd, "version")
	require.NoError(t, err)

	assert.Contains(t, output, "fixturemocks")
	assert.Contains(t, output, "Commit")
	assert.Contains(t, output, "Build Date")
	assert.Contains(t, output, "Go Version")
	assert.Contains(t, output, "OS/Arch")
}

func TestGetMocksCommand_Help(t *testing.T) {
	output, err := executeCommand(rootCmd, "get-mocks", "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "Run the getMocks task")
	assert.Contains(t, output, "--mocks-folder")
	assert.Contains(t, output, "--api-path")
	assert.Contains(t, output, "--no-cache")
	assert.Contains(t, output, "--format")
	assert.Contains(t, output, "--output")
}

func TestCheckCommand_Help(t *testing.T) {
	output, err := executeCommand(rootCmd, "check", "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "Check scans the mocks folder")
	assert.Contains(t, output, "--ci")
}

func TestWatchCommand_Help(t *testing.T) {
	output, err := executeCommand(rootCmd, "watch", "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "Watch the mocks folder")
	assert.Contains(t, output, "--debounce")
	assert.Contains(t, output, "--output")
}

func TestDiffCommand_Help(t *testing.T) {
	output, err := executeCommand(rootCmd, "diff", "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "Compare two descriptor lists")
	assert.Contains(t, output, "--exit-code")
	assert.Contains(t, output, "--mocks-folder")
}

func TestInitCommand_Help(t *testing.T) {
	output, err := executeCommand(rootCmd, "init", "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "Initialize a new fixturemocks configuration file")
	assert.Contains(t, output, "--force")
	assert.Contains(t, output, "--response-prefix")
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	assert.Contains(t, info, "fixturemocks")
	assert.Contains(t, info, "commit")
	assert.Contains(t, info, "built")
}
