// SPDX-FileCopyrightText: 2026 fixturemocks
// SPDX-License-Identifier: FSL-1.1-MIT

// Package output writes descriptor lists as JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fixturemocks/fixturemocks/pkg/types"
)

// Writer handles writing descriptor lists to various outputs.
type Writer struct {
	// Indent specifies the indentation for JSON output (default: 2 spaces)
	Indent int
}

// NewWriter creates a new Writer with default settings.
func NewWriter() *Writer {
	return &Writer{
		Indent: 2,
	}
}

// WriteYAML writes descriptors as a YAML sequence to the given writer.
func (w *Writer) WriteYAML(list []types.Descriptor, out io.Writer) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(nonNil(list)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}

// WriteJSON writes descriptors as a JSON array to the given writer.
func (w *Writer) WriteJSON(list []types.Descriptor, out io.Writer) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", strings.Repeat(" ", w.Indent))

	if err := encoder.Encode(nonNil(list)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// Write writes descriptors in format ("json" or "yaml").
func (w *Writer) Write(list []types.Descriptor, out io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "", "json":
		return w.WriteJSON(list, out)
	case "yaml", "yml":
		return w.WriteYAML(list, out)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// WriteFile writes descriptors to a file.
// If format is empty, it is inferred from the file extension.
func (w *Writer) WriteFile(list []types.Descriptor, path string, format string) error {
	if format == "" {
		format = FormatFromPath(path)
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return w.Write(list, file, format)
}

// FormatFromPath infers the output format from a file extension,
// defaulting to JSON.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

// nonNil makes an empty list encode as [] rather than null.
func nonNil(list []types.Descriptor) []types.Descriptor {
	if list == nil {
		return []types.Descriptor{}
	}
	return list
}
