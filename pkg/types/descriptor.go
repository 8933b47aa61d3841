// SPDX-FileCopyrightText: 2026 fixturemocks
// SPDX-License-Identifier: FSL-1.1-MIT

// Package types provides the route-interception descriptors produced from mock fixtures.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Source identifies where a descriptor came from.
type Source int

const (
	// SourceConvention marks a descriptor parsed from a fixture file name.
	SourceConvention Source = iota

	// SourceManifest marks a descriptor read from an options.json manifest.
	SourceManifest
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceConvention:
		return "convention"
	case SourceManifest:
		return "manifest"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// Descriptor is one route-interception record for the test runner.
type Descriptor struct {
	// Name is the fixture base name without extension (e.g., "get-admin")
	Name string

	// Alt is the optional variant parsed after the first hyphen; empty when absent
	Alt string

	// Response is the reference token of the fixture served as the response body
	Response string

	// URL is the intercepted URL pattern (e.g., "/api/users/*")
	URL string

	// Method is the upper-cased HTTP method
	Method string

	// Alias is the label test code uses to reference the route
	Alias string

	// Source records whether the descriptor came from a file name or a manifest
	Source Source

	// Extra holds manifest fields that have no typed counterpart, kept verbatim
	Extra map[string]any
}

// knownFields are the keys mapped onto typed Descriptor fields.
var knownFields = []string{"name", "alt", "response", "url", "method", "alias"}

// Fields returns the flattened key/value view used for serialization.
// Typed fields win over Extra entries with the same key.
func (d Descriptor) Fields() map[string]any {
	out := make(map[string]any, len(d.Extra)+len(knownFields))
	for k, v := range d.Extra {
		out[k] = v
	}

	setIf := func(key, value string) {
		if value != "" {
			out[key] = value
		}
	}
	setIf("name", d.Name)
	setIf("alt", d.Alt)
	setIf("response", d.Response)
	setIf("url", d.URL)
	out["method"] = d.Method
	if _, authored := out["alias"]; !authored || d.Alias != "" {
		out["alias"] = d.Alias
	}

	return out
}

// MarshalJSON flattens the typed fields and Extra into one object.
func (d Descriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Fields())
}

// MarshalYAML flattens the typed fields and Extra into one mapping.
func (d Descriptor) MarshalYAML() (interface{}, error) {
	return d.Fields(), nil
}

// UnmarshalJSON decodes a manifest entry. String values of known keys fill
// the typed fields; non-string values of those keys, and every other key, are
// preserved in Extra. Only method must be a string (or null). Numbers are
// kept as json.Number.
func (d *Descriptor) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("descriptor must be a JSON object")
	}

	var out Descriptor
	targets := map[string]*string{
		"name":     &out.Name,
		"alt":      &out.Alt,
		"response": &out.Response,
		"url":      &out.URL,
		"method":   &out.Method,
		"alias":    &out.Alias,
	}

	for key, value := range raw {
		target, known := targets[key]
		switch v := value.(type) {
		case nil:
			if known {
				continue
			}
		case string:
			if known {
				*target = v
				continue
			}
		default:
			if key == "method" {
				return fmt.Errorf("field %q must be a string, got %T", key, value)
			}
		}
		if out.Extra == nil {
			out.Extra = make(map[string]any)
		}
		out.Extra[key] = value
	}

	*d = out
	return nil
}
