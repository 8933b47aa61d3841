// SPDX-FileCopyrightText: 2026 fixturemocks
// SPDX-License-Identifier: FSL-1.1-MIT

package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WatchesSubdirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "users", "__id"), 0o755))

	w, err := New(Config{Root: root, Debounce: 10 * time.Millisecond})
	require.NoError(t, err)
	defer w.fsw.Close()

	assert.ElementsMatch(t, []string{
		root,
		filepath.Join(root, "users"),
		filepath.Join(root, "users", "__id"),
	}, w.WatchList())
}

func TestNew_MissingRoot(t *testing.T) {
	_, err := New(Config{Root: filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, err)
}

func TestWatcher_Run_DebouncesEvents(t *testing.T) {
	root := t.TempDir()

	w, err := New(Config{Root: root, Debounce: 150 * time.Millisecond})
	require.NoError(t, err)

	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() { calls.Add(1) })
	}()

	for _, name := range []string{"get.json", "post.json", "put.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("{}"), 0o644))
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWatcher_Run_PicksUpNewDirectories(t *testing.T) {
	root := t.TempDir()

	w, err := New(Config{Root: root, Debounce: 20 * time.Millisecond})
	require.NoError(t, err)

	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = w.Run(ctx, func() { calls.Add(1) })
	}()

	sub := filepath.Join(root, "orders")
	require.NoError(t, os.Mkdir(sub, 0o755))
	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	before := calls.Load()
	require.NoError(t, os.WriteFile(filepath.Join(sub, "get.json"), []byte("{}"), 0o644))
	assert.Eventually(t, func() bool { return calls.Load() > before }, 2*time.Second, 10*time.Millisecond)
}
