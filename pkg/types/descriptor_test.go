// SPDX-FileCopyrightText: 2026 fixturemocks
// SPDX-License-Identifier: FSL-1.1-MIT

package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDescriptor_MarshalJSON_OmitsEmptyFields(t *testing.T) {
	d := Descriptor{
		Name:     "get",
		Response: "mocks/users/get.json",
		URL:      "/api/users",
		Method:   "GET",
		Alias:    "GET:users",
	}

	data, err := json.Marshal(d)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"name": "get",
		"response": "mocks/users/get.json",
		"url": "/api/users",
		"method": "GET",
		"alias": "GET:users"
	}`, string(data))
	assert.NotContains(t, string(data), "alt")
}

func TestDescriptor_MarshalJSON_FlattensExtra(t *testing.T) {
	d := Descriptor{
		URL:    "/api/widgets",
		Method: "GET",
		Alias:  "custom",
		Source: SourceManifest,
		Extra: map[string]any{
			"status": json.Number("404"),
			"alias":  "ignored",
		},
	}

	data, err := json.Marshal(d)
	require.NoError(t, err)

	assert.JSONEq(t, `{"url":"/api/widgets","method":"GET","alias":"custom","status":404}`, string(data))
}

func TestDescriptor_UnmarshalJSON(t *testing.T) {
	var d Descriptor
	err := json.Unmarshal([]byte(`{"url":"/api/widgets","alias":"custom","status":201,"headers":{"x-a":"b"},"method":null}`), &d)
	require.NoError(t, err)

	assert.Equal(t, "/api/widgets", d.URL)
	assert.Equal(t, "custom", d.Alias)
	assert.Empty(t, d.Method)
	assert.Equal(t, json.Number("201"), d.Extra["status"])
	assert.Equal(t, map[string]any{"x-a": "b"}, d.Extra["headers"])
}

func TestDescriptor_UnmarshalJSON_NonStringKnownFields(t *testing.T) {
	var d Descriptor
	err := json.Unmarshal([]byte(`{"url":"/api/a","response":{"id":1},"name":7,"alt":true,"alias":null}`), &d)
	require.NoError(t, err)

	assert.Equal(t, "/api/a", d.URL)
	assert.Empty(t, d.Response)
	assert.Empty(t, d.Name)
	assert.Empty(t, d.Alt)
	assert.Empty(t, d.Alias)
	assert.Equal(t, map[string]any{
		"response": map[string]any{"id": json.Number("1")},
		"name":     json.Number("7"),
		"alt":      true,
	}, d.Extra)
}

func TestDescriptor_Fields_AuthoredAliasKept(t *testing.T) {
	d := Descriptor{Method: "GET", Extra: map[string]any{"alias": []any{"a"}}}
	assert.Equal(t, []any{"a"}, d.Fields()["alias"])

	d.Alias = "GET:a"
	assert.Equal(t, "GET:a", d.Fields()["alias"])
}

func TestDescriptor_UnmarshalJSON_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "non-string method", input: `{"method": 5}`},
		{name: "array entry", input: `["GET"]`},
		{name: "null entry", input: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Descriptor
			assert.Error(t, json.Unmarshal([]byte(tt.input), &d))
		})
	}
}

func TestDescriptor_MarshalYAML(t *testing.T) {
	d := Descriptor{
		Name:   "get-admin",
		Alt:    "admin",
		URL:    "/api/users",
		Method: "GET",
		Alias:  "GET:users:admin",
	}

	out, err := yaml.Marshal(d)
	require.NoError(t, err)

	assert.Contains(t, string(out), "alias: GET:users:admin")
	assert.Contains(t, string(out), "alt: admin")
	assert.Contains(t, string(out), "url: /api/users")
}

func TestSource_String(t *testing.T) {
	assert.Equal(t, "convention", SourceConvention.String())
	assert.Equal(t, "manifest", SourceManifest.String())
	assert.Equal(t, "Source(7)", Source(7).String())
}
