// SPDX-FileCopyrightText: 2026 fixturemocks
// SPDX-License-Identifier: FSL-1.1-MIT

// Package util provides shared string helpers for fixture name parsing.
package util

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WildcardEscape is the file-name sequence standing in for a "*" path segment.
const WildcardEscape = "__"

var upper = cases.Upper(language.Und)

// NormalizeMethod upper-cases an HTTP method, defaulting to GET when empty.
func NormalizeMethod(method string) string {
	if method == "" {
		return "GET"
	}
	return upper.String(method)
}

// ExpandWildcards rewrites every "__" in p to "*".
// For example: "items/__id/get.json" returns "items/*id/get.json".
func ExpandWildcards(p string) string {
	return strings.ReplaceAll(p, WildcardEscape, "*")
}

// SplitFirst splits s around the first occurrence of sep.
// The second value is empty when sep does not occur.
func SplitFirst(s, sep string) (string, string) {
	before, after, _ := strings.Cut(s, sep)
	return before, after
}
