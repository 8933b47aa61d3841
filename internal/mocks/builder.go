// SPDX-FileCopyrightText: 2026 fixturemocks
// SPDX-License-Identifier: FSL-1.1-MIT

// Package mocks turns mock fixture files and options.json manifests into
// route-interception descriptors.
package mocks

import (
	"errors"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/fixturemocks/fixturemocks/internal/util"
	"github.com/fixturemocks/fixturemocks/pkg/types"
)

// Glob patterns used by the convention and manifest scans.
const (
	// candidatePattern selects every file the name filter is applied to.
	candidatePattern = "**/*"

	// conventionPattern is matched against lower-cased base names.
	conventionPattern = "{get,post,put,delete}*.{json,txt}"

	// manifestPattern selects options.json manifests at any depth.
	manifestPattern = "**/" + ManifestName
)

// ErrFolderNotFound is reported when the mocks folder does not exist.
var ErrFolderNotFound = errors.New("mocks folder not found")

// FileSystem is the filesystem access the builder needs.
type FileSystem interface {
	// DirExists reports whether dir exists and is a directory.
	DirExists(dir string) (bool, error)

	// Glob returns slash-separated paths relative to root matching pattern.
	Glob(root, pattern string) ([]string, error)

	// ReadFile returns the contents of the named file.
	ReadFile(name string) ([]byte, error)
}

// Result is the outcome of a Build call. Descriptors holds whatever was
// collected before a failure; Err records the failure, if any.
type Result struct {
	// Descriptors is the ordered descriptor list
	Descriptors []types.Descriptor

	// Err is the suppressed scan or parse failure
	Err error

	// Cached is true when the list came from the cache without a scan
	Cached bool
}

// Builder produces descriptors from a mocks folder under a fixtures root.
type Builder struct {
	fs             FileSystem
	cache          *Cache
	fixturesFolder string
	responsePrefix string
	logger         *slog.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithFixturesFolder sets the fixtures root the mocks folder is resolved against.
func WithFixturesFolder(dir string) BuilderOption {
	return func(b *Builder) {
		b.fixturesFolder = dir
	}
}

// WithResponsePrefix sets the prefix of response tokens (e.g., "fx:").
func WithResponsePrefix(prefix string) BuilderOption {
	return func(b *Builder) {
		b.responsePrefix = prefix
	}
}

// WithLogger sets the logger used to report suppressed failures.
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) {
		b.logger = logger
	}
}

// NewBuilder creates a Builder. A nil cache gets a fresh one.
func NewBuilder(fs FileSystem, cache *Cache, opts ...BuilderOption) *Builder {
	if cache == nil {
		cache = NewCache()
	}

	b := &Builder{
		fs:             fs,
		cache:          cache,
		fixturesFolder: DefaultFixturesFolder,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Cache returns the cache the builder memoizes into.
func (b *Builder) Cache() *Cache {
	return b.cache
}

// Root returns the directory scanned for the given mocks folder.
func (b *Builder) Root(mocksFolder string) string {
	return filepath.Join(b.fixturesFolder, mocksFolder)
}

// Build scans the mocks folder and returns its descriptors. It never fails:
// errors stop the scan and are reported on Result.Err alongside the partial list.
func (b *Builder) Build(opts Options) Result {
	opts = opts.WithDefaults()
	root := b.Root(opts.MocksFolder)

	if opts.CacheEnabled() {
		if list, ok := b.cache.Get(opts.MocksFolder); ok {
			b.logger.Debug("mocks cache hit", "folder", opts.MocksFolder, "count", len(list))
			return Result{Descriptors: list, Cached: true}
		}
	}

	list, err := b.scan(root, opts)
	if err != nil {
		b.logger.Warn("mock scan stopped early",
			"folder", opts.MocksFolder,
			"root", root,
			"collected", len(list),
			"error", err)
	}

	b.cache.Set(opts.MocksFolder, list)
	return Result{Descriptors: list, Err: err}
}

// scan runs the convention scan followed by the manifest scan, returning
// everything collected up to the first error.
func (b *Builder) scan(root string, opts Options) ([]types.Descriptor, error) {
	list := []types.Descriptor{}

	exists, err := b.fs.DirExists(root)
	if err != nil {
		return list, fmt.Errorf("failed to stat %s: %w", root, err)
	}
	if !exists {
		return list, fmt.Errorf("%w: %s", ErrFolderNotFound, root)
	}

	candidates, err := b.fs.Glob(root, candidatePattern)
	if err != nil {
		return list, err
	}
	for _, rel := range candidates {
		if !IsConventionFile(rel) {
			continue
		}
		list = append(list, b.conventionDescriptor(rel, opts))
	}

	manifests, err := b.fs.Glob(root, manifestPattern)
	if err != nil {
		return list, err
	}
	for _, rel := range manifests {
		data, err := b.fs.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			return list, fmt.Errorf("failed to read manifest %s: %w", rel, err)
		}
		entries, err := ParseManifest(rel, data, opts.APIPath)
		if err != nil {
			return list, err
		}
		list = append(list, entries...)
	}

	return list, nil
}

// IsConventionFile reports whether the base name of rel follows the
// <verb>[-<alt>].{json,txt} convention. The verb is matched case-insensitively.
func IsConventionFile(rel string) bool {
	matched, err := doublestar.Match(conventionPattern, strings.ToLower(path.Base(rel)))
	return err == nil && matched
}

// conventionDescriptor builds the descriptor for a convention file at rel.
func (b *Builder) conventionDescriptor(rel string, opts Options) types.Descriptor {
	expanded := util.ExpandWildcards(rel)

	dir := path.Dir(expanded)
	if dir == "." {
		dir = ""
	}
	base := path.Base(expanded)
	name := strings.TrimSuffix(base, path.Ext(base))

	method, alt := util.SplitFirst(name, "-")
	method = util.NormalizeMethod(method)

	alias := method + ":" + dir
	if alt != "" {
		alias += ":" + alt
	}

	// A file at the scan root intercepts the API path itself, trailing slash kept.
	url := opts.APIPath
	if dir != "" {
		url = path.Join(opts.APIPath, dir)
	}

	return types.Descriptor{
		Name:     name,
		Alt:      alt,
		Response: b.responsePrefix + path.Join(opts.MocksFolder, rel),
		URL:      url,
		Method:   method,
		Alias:    alias,
		Source:   types.SourceConvention,
	}
}
