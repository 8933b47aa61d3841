// SPDX-FileCopyrightText: 2026 fixturemocks
// SPDX-License-Identifier: FSL-1.1-MIT

// Package scanner provides glob-based file discovery over an afero filesystem.
package scanner

import (
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// Config holds scanner configuration.
type Config struct {
	// Fs is the filesystem to scan (defaults to the OS filesystem)
	Fs afero.Fs

	// ExcludePatterns are glob patterns, relative to the scan root, for paths
	// that are never returned (e.g., "**/node_modules/**")
	ExcludePatterns []string
}

// Scanner discovers files under a root directory.
type Scanner struct {
	config Config
}

// New creates a new Scanner with the given configuration.
func New(config Config) *Scanner {
	if config.Fs == nil {
		config.Fs = afero.NewOsFs()
	}

	return &Scanner{
		config: config,
	}
}

// NewOs creates a Scanner over the real operating system filesystem.
func NewOs() *Scanner {
	return New(Config{Fs: afero.NewOsFs()})
}

// Fs returns the underlying filesystem.
func (s *Scanner) Fs() afero.Fs {
	return s.config.Fs
}

// DirExists reports whether dir exists and is a directory.
func (s *Scanner) DirExists(dir string) (bool, error) {
	return afero.DirExists(s.config.Fs, dir)
}

// Glob returns the regular files under root matching pattern. Paths are
// slash-separated, relative to root and sorted so repeated scans agree.
func (s *Scanner) Glob(root, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}

	fsys := afero.NewIOFS(afero.NewBasePathFs(s.config.Fs, root))

	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to glob %s in %s: %w", pattern, root, err)
	}

	files := make([]string, 0, len(matches))
	for _, match := range matches {
		if s.isExcluded(match) {
			continue
		}
		info, err := fs.Stat(fsys, match)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", match, err)
		}
		if info.IsDir() {
			continue
		}
		files = append(files, path.Clean(match))
	}

	sort.Strings(files)
	return files, nil
}

// ReadFile reads the named file.
func (s *Scanner) ReadFile(name string) ([]byte, error) {
	data, err := afero.ReadFile(s.config.Fs, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// isExcluded checks a relative path against the exclude patterns.
func (s *Scanner) isExcluded(rel string) bool {
	for _, pattern := range s.config.ExcludePatterns {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			// Invalid pattern, skip
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
