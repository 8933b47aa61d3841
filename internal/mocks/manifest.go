// SPDX-FileCopyrightText: 2026 fixturemocks
// SPDX-License-Identifier: FSL-1.1-MIT

package mocks

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/fixturemocks/fixturemocks/internal/util"
	"github.com/fixturemocks/fixturemocks/pkg/types"
)

// ManifestName is the file name of an explicit descriptor manifest.
const ManifestName = "options.json"

// ParseManifest decodes an options.json manifest found at rel (relative to
// the scan root) and fills in the method and alias defaults for each entry.
func ParseManifest(rel string, data []byte, apiPath string) ([]types.Descriptor, error) {
	var entries []types.Descriptor
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", rel, err)
	}
	if entries == nil {
		return nil, fmt.Errorf("failed to parse manifest %s: expected a JSON array", rel)
	}

	dir := manifestDir(rel)
	for i := range entries {
		entry := &entries[i]
		entry.Source = types.SourceManifest
		entry.Method = util.NormalizeMethod(entry.Method)
		if entry.Alias != "" || truthy(entry.Extra["alias"]) {
			continue
		}
		delete(entry.Extra, "alias")
		if entry.URL != "" && strings.HasPrefix(entry.URL, apiPath) {
			entry.Alias = entry.Method + ":" + strings.TrimPrefix(entry.URL, apiPath)
		} else {
			entry.Alias = entry.Method + ":" + dir
		}
	}

	return entries, nil
}

// manifestDir returns the manifest's directory with wildcard escapes expanded,
// or "" for a manifest at the scan root.
func manifestDir(rel string) string {
	dir := path.Dir(util.ExpandWildcards(rel))
	if dir == "." {
		return ""
	}
	return dir
}

// truthy reports whether an authored non-string value counts as set:
// false, zero and null do not.
func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	default:
		return true
	}
}
