// SPDX-FileCopyrightText: 2026 fixturemocks
// SPDX-License-Identifier: FSL-1.1-MIT

package mocks

// Default option values.
const (
	DefaultMocksFolder    = "mocks"
	DefaultAPIPath        = "/api/"
	DefaultFixturesFolder = "cypress/fixtures"
)

// Options controls a single Build call.
type Options struct {
	// MocksFolder is the folder under the fixtures root to scan (default: "mocks")
	MocksFolder string `mapstructure:"mocksFolder"`

	// APIPath prefixes intercept URLs and is stripped from manifest URLs (default: "/api/")
	APIPath string `mapstructure:"apiPath"`

	// Cache enables reuse of a previous result for the same MocksFolder.
	// Nil means enabled.
	Cache *bool `mapstructure:"cache"`
}

// WithDefaults returns a copy of o with empty fields filled in.
func (o Options) WithDefaults() Options {
	if o.MocksFolder == "" {
		o.MocksFolder = DefaultMocksFolder
	}
	if o.APIPath == "" {
		o.APIPath = DefaultAPIPath
	}
	if o.Cache == nil {
		enabled := true
		o.Cache = &enabled
	}
	return o
}

// CacheEnabled reports whether caching is requested.
func (o Options) CacheEnabled() bool {
	return o.Cache == nil || *o.Cache
}

// Bool returns a pointer to b, for setting Options.Cache.
func Bool(b bool) *bool {
	return &b
}
