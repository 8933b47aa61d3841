// SPDX-FileCopyrightText: 2026 fixturemocks
// SPDX-License-Identifier: FSL-1.1-MIT

package mocks

import (
	"fmt"
	"sort"

	"github.com/fixturemocks/fixturemocks/pkg/types"
)

// Issue describes a problem with a descriptor list.
type Issue struct {
	// Alias is the alias the issue concerns
	Alias string

	// Message describes the problem
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Alias, i.Message)
}

// Validate reports aliases shared by more than one descriptor. Test code
// can only reach one route per alias, so every duplicate shadows a mock.
func Validate(list []types.Descriptor) []Issue {
	sources := make(map[string][]string)
	var order []string

	for _, d := range list {
		// A non-string alias authored in a manifest has no string label to collide on.
		if d.Alias == "" {
			continue
		}
		if _, seen := sources[d.Alias]; !seen {
			order = append(order, d.Alias)
		}
		sources[d.Alias] = append(sources[d.Alias], describe(d))
	}

	var issues []Issue
	for _, alias := range order {
		defs := sources[alias]
		if len(defs) < 2 {
			continue
		}
		sort.Strings(defs)
		issues = append(issues, Issue{
			Alias:   alias,
			Message: fmt.Sprintf("alias defined %d times (%v)", len(defs), defs),
		})
	}
	return issues
}

// describe names the origin of a descriptor for issue messages.
func describe(d types.Descriptor) string {
	if d.Response != "" {
		return d.Response
	}
	return fmt.Sprintf("%s %s %s", d.Source, d.Method, d.URL)
}
