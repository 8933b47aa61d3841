// SPDX-FileCopyrightText: 2026 fixturemocks
// SPDX-License-Identifier: FSL-1.1-MIT

package mocks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/fixturemocks/fixturemocks/pkg/types"
)

// DiffType represents the type of change detected.
type DiffType string

const (
	// DiffTypeAdded indicates a new alias was added.
	DiffTypeAdded DiffType = "added"

	// DiffTypeRemoved indicates an alias was removed.
	DiffTypeRemoved DiffType = "removed"

	// DiffTypeModified indicates an alias now routes differently.
	DiffTypeModified DiffType = "modified"
)

// Change represents a change to one aliased route.
type Change struct {
	Type        DiffType
	Alias       string
	Method      string
	URL         string
	Description string
}

// DiffResult contains the differences between two descriptor lists.
type DiffResult struct {
	// Changes contains all alias changes, sorted by alias.
	Changes []Change

	// HasBreakingChanges is set when an alias test code may reference was removed.
	HasBreakingChanges bool

	// Summary provides a human-readable summary of changes.
	Summary string
}

// IsEmpty returns true if there are no differences.
func (d *DiffResult) IsEmpty() bool {
	return len(d.Changes) == 0
}

// Diff compares two descriptor lists by alias. When an alias appears more
// than once in a list, the last entry wins, as with route registration.
func Diff(a, b []types.Descriptor) *DiffResult {
	aByAlias := indexByAlias(a)
	bByAlias := indexByAlias(b)

	result := &DiffResult{Changes: []Change{}}

	for alias, aDesc := range aByAlias {
		bDesc, exists := bByAlias[alias]
		switch {
		case !exists:
			result.Changes = append(result.Changes, newChange(DiffTypeRemoved, aDesc))
		case !sameRoute(aDesc, bDesc):
			result.Changes = append(result.Changes, newChange(DiffTypeModified, bDesc))
		}
	}

	for alias, bDesc := range bByAlias {
		if _, exists := aByAlias[alias]; !exists {
			result.Changes = append(result.Changes, newChange(DiffTypeAdded, bDesc))
		}
	}

	sort.Slice(result.Changes, func(i, j int) bool {
		return result.Changes[i].Alias < result.Changes[j].Alias
	})

	for _, c := range result.Changes {
		if c.Type == DiffTypeRemoved {
			result.HasBreakingChanges = true
			break
		}
	}
	result.Summary = summarize(result)

	return result
}

func indexByAlias(list []types.Descriptor) map[string]types.Descriptor {
	out := make(map[string]types.Descriptor, len(list))
	for _, d := range list {
		out[d.Alias] = d
	}
	return out
}

func newChange(kind DiffType, d types.Descriptor) Change {
	var verb string
	switch kind {
	case DiffTypeAdded:
		verb = "Added"
	case DiffTypeRemoved:
		verb = "Removed"
	default:
		verb = "Modified"
	}
	return Change{
		Type:        kind,
		Alias:       d.Alias,
		Method:      d.Method,
		URL:         d.URL,
		Description: fmt.Sprintf("%s %s", verb, d.Alias),
	}
}

// sameRoute compares the serialized form, so Extra values decoded from
// different formats compare by their JSON representation.
func sameRoute(a, b types.Descriptor) bool {
	aJSON, aErr := json.Marshal(a)
	bJSON, bErr := json.Marshal(b)
	if aErr != nil || bErr != nil {
		return false
	}
	return bytes.Equal(aJSON, bJSON)
}

// summarize creates a human-readable summary of changes.
func summarize(result *DiffResult) string {
	if result.IsEmpty() {
		return "No changes detected"
	}

	added, removed, modified := 0, 0, 0
	for _, c := range result.Changes {
		switch c.Type {
		case DiffTypeAdded:
			added++
		case DiffTypeRemoved:
			removed++
		case DiffTypeModified:
			modified++
		}
	}

	var parts []string
	if added > 0 {
		parts = append(parts, fmt.Sprintf("%d alias(es) added", added))
	}
	if removed > 0 {
		parts = append(parts, fmt.Sprintf("%d alias(es) removed", removed))
	}
	if modified > 0 {
		parts = append(parts, fmt.Sprintf("%d alias(es) modified", modified))
	}

	summary := strings.Join(parts, ", ")
	if result.HasBreakingChanges {
		summary += " [BREAKING CHANGES DETECTED]"
	}
	return summary
}

// FormatDiff returns a formatted string representation of the diff.
func FormatDiff(result *DiffResult) string {
	if result.IsEmpty() {
		return "No differences found.\n"
	}

	var sb strings.Builder
	sb.WriteString(result.Summary)
	sb.WriteString("\n\n")

	for _, c := range result.Changes {
		symbol := "  "
		switch c.Type {
		case DiffTypeAdded:
			symbol = "+ "
		case DiffTypeRemoved:
			symbol = "- "
		case DiffTypeModified:
			symbol = "~ "
		}
		fmt.Fprintf(&sb, "%s%s (%s %s)\n", symbol, c.Alias, c.Method, c.URL)
	}

	return sb.String()
}
