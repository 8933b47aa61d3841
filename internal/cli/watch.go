// SPDX-FileCopyrightText: 2026 fixturemocks
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/fixturemocks/fixturemocks/internal/watcher"
)

var watchDebounce int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the mocks folder and rewrite descriptors on change",
	Long: `Watch the mocks folder and rebuild the descriptor list whenever a fixture
or manifest changes. Each rebuild bypasses the cache so new files are
picked up immediately.

Example:
  fixturemocks watch -o mocks.json          # Keep mocks.json current
  fixturemocks watch --debounce 1000        # Wait 1s after the last change`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&getMocksFolder, "mocks-folder", "", "folder under the fixtures root to watch (default: mocks)")
	watchCmd.Flags().StringVar(&getMocksAPIPath, "api-path", "", "URL prefix for intercepted routes (default: /api/)")
	watchCmd.Flags().StringVarP(&getMocksFormat, "format", "f", "", "output format: json, yaml (default: json)")
	watchCmd.Flags().StringVarP(&getMocksOutput, "output", "o", "", "output file path (default: stdout)")
	watchCmd.Flags().IntVar(&watchDebounce, "debounce", 0, "debounce duration in milliseconds (default: 500)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	h, err := newHost()
	if err != nil {
		return err
	}

	debounce := h.cfg.Watch.Debounce
	if watchDebounce > 0 {
		debounce = watchDebounce
	}

	taskArgs := h.taskArgs(getMocksFolder, getMocksAPIPath, true)
	root := h.builder.Root(taskArgs["mocksFolder"].(string))

	rebuild := func() {
		result, err := h.getMocks.Build(taskArgs)
		if err != nil {
			printError("%v", err)
			return
		}
		if err := writeDescriptors(cmd, result.Descriptors, h.cfg.Format, h.cfg.Output); err != nil {
			printError("%v", err)
		}
	}

	w, err := watcher.New(watcher.Config{
		Root:     root,
		Debounce: time.Duration(debounce) * time.Millisecond,
		Logger:   newLogger(),
	})
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", root, err)
	}

	printVerbose("Watch configuration:")
	printVerbose("  Root: %s", root)
	printVerbose("  Debounce: %dms", debounce)

	rebuild()

	ctx, stop := watchContext(cmd.Context())
	defer stop()

	printInfo("Watching for changes in: %s", root)
	printInfo("Press Ctrl+C to stop")

	return w.Run(ctx, rebuild)
}

// watchContext is overridden in tests to stop the watch loop.
var watchContext = func(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}
