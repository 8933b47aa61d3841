// SPDX-FileCopyrightText: 2026 fixturemocks
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeDescriptors(t *testing.T, data string) []map[string]any {
	t.Helper()

	var list []map[string]any
	require.NoError(t, json.Unmarshal([]byte(data), &list))
	return list
}

func TestGetMocksCommand_Defaults(t *testing.T) {
	setupProject(t, map[string]string{
		"cypress/fixtures/mocks/users/get.json":       "[]",
		"cypress/fixtures/mocks/users/get-admin.json": "[]",
		"cypress/fixtures/mocks/options.json":         `[{"url":"/api/widgets","alias":"custom","status":404}]`,
	})

	output, err := executeCommand(rootCmd, "get-mocks")
	require.NoError(t, err)

	list := decodeDescriptors(t, output)
	require.Len(t, list, 3)

	assert.Equal(t, "GET:users", list[0]["alias"])
	assert.Equal(t, "mocks/users/get.json", list[0]["response"])
	assert.Equal(t, "GET:users:admin", list[1]["alias"])
	assert.Equal(t, "admin", list[1]["alt"])
	assert.Equal(t, "custom", list[2]["alias"])
	assert.Equal(t, "GET", list[2]["method"])
	assert.Equal(t, float64(404), list[2]["status"])
}

func TestGetMocksCommand_FlagOverrides(t *testing.T) {
	setupProject(t, map[string]string{
		"e2e/fixtures/stubs/orders/post.json": "{}",
	})

	output, err := executeCommand(rootCmd,
		"get-mocks",
		"--fixtures", "e2e/fixtures",
		"--mocks-folder", "stubs",
		"--api-path", "/v2/",
		"--no-cache",
	)
	require.NoError(t, err)

	list := decodeDescriptors(t, output)
	require.Len(t, list, 1)
	assert.Equal(t, "/v2/orders", list[0]["url"])
	assert.Equal(t, "POST:orders", list[0]["alias"])
	assert.Equal(t, "stubs/orders/post.json", list[0]["response"])
}

func TestGetMocksCommand_ConfigFile(t *testing.T) {
	setupProject(t, map[string]string{
		"fixturemocks.yaml":               "fixturesFolder: fx\nresponsePrefix: \"fx:\"\n",
		"fx/mocks/items/__id/delete.json": "{}",
	})

	output, err := executeCommand(rootCmd, "get-mocks")
	require.NoError(t, err)

	list := decodeDescriptors(t, output)
	require.Len(t, list, 1)
	assert.Equal(t, "fx:mocks/items/__id/delete.json", list[0]["response"])
	assert.Equal(t, "/api/items/*id", list[0]["url"])
	assert.Equal(t, "DELETE", list[0]["method"])
}

func TestGetMocksCommand_MissingFolder(t *testing.T) {
	setupProject(t, nil)

	output, err := executeCommand(rootCmd, "get-mocks")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", output)
}

func TestGetMocksCommand_YAMLToFile(t *testing.T) {
	dir := setupProject(t, map[string]string{
		"cypress/fixtures/mocks/users/put-name.txt": "name",
	})

	_, err := executeCommand(rootCmd, "get-mocks", "-o", "out/mocks.yaml")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "out", "mocks.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "method: PUT")
	assert.Contains(t, string(data), "response: mocks/users/put-name.txt")
}

func TestGetMocksCommand_InvalidConfig(t *testing.T) {
	setupProject(t, map[string]string{
		"fixturemocks.yaml": "apiPath: api\n",
	})

	_, err := executeCommand(rootCmd, "get-mocks")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
