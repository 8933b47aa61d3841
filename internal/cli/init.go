// SPDX-FileCopyrightText: 2026 fixturemocks
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fixturemocks/fixturemocks/internal/config"
)

var (
	initForce          bool
	initResponsePrefix string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new fixturemocks configuration file",
	Long: `Initialize a new fixturemocks configuration file in the current directory.

This command creates a fixturemocks.yaml file with sensible defaults
that you can customize for your project.

Features:
  - Detects the fixtures folder from common test-runner layouts
  - Sets the response token prefix for your runner

Example:
  fixturemocks init                          # Detect fixtures folder and create config
  fixturemocks init --fixtures e2e/fixtures  # Use a specific fixtures folder
  fixturemocks init --response-prefix fx:    # Emit Cypress fixture tokens
  fixturemocks init --force                  # Overwrite existing config`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing config file")
	initCmd.Flags().StringVar(&initResponsePrefix, "response-prefix", "", "prefix for response tokens (e.g., fx:)")
}

func runInit(cmd *cobra.Command, args []string) error {
	configFile := config.FileNames()[0]

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil && !initForce {
		return fmt.Errorf("config file %s already exists, use --force to overwrite", configFile)
	}

	projectRoot, err := filepath.Abs(".")
	if err != nil {
		return fmt.Errorf("failed to determine project root: %w", err)
	}

	cfg := config.Default()
	cfg.ResponsePrefix = initResponsePrefix

	if fixtures != "" {
		cfg.FixturesFolder = fixtures
	} else if detected := detectFixturesFolder(projectRoot); detected != "" {
		cfg.FixturesFolder = detected
		printInfo("Detected fixtures folder: %s", detected)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(buildConfigYAML(cfg)), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	printInfo("Created %s", configFile)
	printVerbose("Fixtures: %s", cfg.FixturesFolder)
	printVerbose("Mocks folder: %s", cfg.MocksFolder)

	return nil
}

// fixturesCandidates are common fixture roots, in order of preference.
var fixturesCandidates = []string{
	"cypress/fixtures",
	"e2e/fixtures",
	"tests/fixtures",
	"test/fixtures",
	"fixtures",
}

// detectFixturesFolder returns the first candidate fixtures folder that
// exists under projectRoot, or "".
func detectFixturesFolder(projectRoot string) string {
	for _, candidate := range fixturesCandidates {
		fullPath := filepath.Join(projectRoot, filepath.FromSlash(candidate))
		if stat, err := os.Stat(fullPath); err == nil && stat.IsDir() {
			return candidate
		}
	}
	return ""
}

// buildConfigYAML builds a YAML config with a header comment.
func buildConfigYAML(cfg *config.Config) string {
	data, _ := yaml.Marshal(cfg)

	header := `# fixturemocks configuration file
# Fixture files: <fixturesFolder>/<mocksFolder>/**/<get|post|put|delete>[-<alt>].{json,txt}

`
	return header + string(data)
}
