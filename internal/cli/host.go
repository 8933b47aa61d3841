// SPDX-FileCopyrightText: 2026 fixturemocks
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"log/slog"

	"github.com/fixturemocks/fixturemocks/internal/config"
	"github.com/fixturemocks/fixturemocks/internal/mocks"
	"github.com/fixturemocks/fixturemocks/internal/scanner"
	"github.com/fixturemocks/fixturemocks/internal/tasks"
)

// host is the task host a command runs against: the loaded config and a
// registry with getMocks installed over a single cache.
type host struct {
	cfg      *config.Config
	registry *tasks.Registry
	getMocks *tasks.GetMocks
	builder  *mocks.Builder
}

// newHost loads and validates the config, applies global flag overrides
// and installs the getMocks task.
func newHost() (*host, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if fixtures != "" {
		cfg.FixturesFolder = fixtures
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	fs := scanner.New(scanner.Config{ExcludePatterns: cfg.Exclude})
	builder := mocks.NewBuilder(fs, mocks.NewCache(),
		mocks.WithFixturesFolder(cfg.FixturesFolder),
		mocks.WithResponsePrefix(cfg.ResponsePrefix),
		mocks.WithLogger(newLogger()),
	)

	registry := tasks.NewRegistry()
	getMocks, err := tasks.Install(registry, builder)
	if err != nil {
		return nil, fmt.Errorf("failed to install tasks: %w", err)
	}

	printVerbose("Configuration:")
	printVerbose("  Fixtures: %s", cfg.FixturesFolder)
	printVerbose("  Mocks folder: %s", cfg.MocksFolder)
	printVerbose("  API path: %s", cfg.APIPath)
	printVerbose("  Cache: %t", cfg.Cache)

	return &host{
		cfg:      cfg,
		registry: registry,
		getMocks: getMocks,
		builder:  builder,
	}, nil
}

// newLogger returns the library logger, honoring --verbose and --quiet.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(infoOut, &slog.HandlerOptions{Level: level}))
}

// taskArgs builds the getMocks options bag from config, overridden by any
// non-empty flag values.
func (h *host) taskArgs(mocksFolder, apiPath string, noCache bool) map[string]any {
	args := map[string]any{
		"mocksFolder": h.cfg.MocksFolder,
		"apiPath":     h.cfg.APIPath,
		"cache":       h.cfg.Cache && !noCache,
	}
	if mocksFolder != "" {
		args["mocksFolder"] = mocksFolder
	}
	if apiPath != "" {
		args["apiPath"] = apiPath
	}
	return args
}
