// SPDX-FileCopyrightText: 2026 fixturemocks
// SPDX-License-Identifier: FSL-1.1-MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fixturemocks/fixturemocks/pkg/types"
)

// Read decodes a descriptor list previously written in format.
func Read(r io.Reader, format string) ([]types.Descriptor, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptors: %w", err)
	}

	switch strings.ToLower(format) {
	case "", "json":
	case "yaml", "yml":
		// Descriptors decode from JSON only, so route YAML through it.
		var raw []map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		if data, err = json.Marshal(raw); err != nil {
			return nil, fmt.Errorf("failed to convert YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	var list []types.Descriptor
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse descriptors: %w", err)
	}
	return list, nil
}

// ReadFile reads a descriptor list from path, inferring the format from its
// extension.
func ReadFile(path string) ([]types.Descriptor, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	return Read(file, FormatFromPath(path))
}
