// SPDX-FileCopyrightText: 2026 fixturemocks
// SPDX-License-Identifier: FSL-1.1-MIT

package mocks

import (
	"sync"

	"github.com/fixturemocks/fixturemocks/pkg/types"
)

// Cache memoizes descriptor lists by mocks folder name. Entries are never
// evicted; a stale list survives until the owning process exits.
type Cache struct {
	mu      sync.Mutex
	entries map[string][]types.Descriptor
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string][]types.Descriptor),
	}
}

// Get returns the list stored for key.
func (c *Cache) Get(key string) ([]types.Descriptor, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	list, ok := c.entries[key]
	return list, ok
}

// Set stores list under key, replacing any previous entry.
func (c *Cache) Set(key string, list []types.Descriptor) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = list
}

// Len returns the number of cached folders.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
