// Package memory provides in-memory implementations of driven storage
// ports.
package memory

import (
	"sync"

	"github.com/custodia-labs/glossa-cli/internal/core/ports/driven"
)

// Ensure GlossaryCache implements the interface.
var _ driven.GlossaryCache = (*GlossaryCache)(nil)

// GlossaryCache is an in-memory snapshot cache keyed by source path.
// Entries are published whole under the lock, so a reader never sees a
// half-written entry; concurrent Put calls are last-writer-wins.
type GlossaryCache struct {
	mu      sync.RWMutex
	entries map[string]driven.CacheEntry
}

// NewGlossaryCache creates an empty cache.
func NewGlossaryCache() *GlossaryCache {
	return &GlossaryCache{
		entries: make(map[string]driven.CacheEntry),
	}
}

// Get returns the cached entry for a key.
func (c *GlossaryCache) Get(key string) (driven.CacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	return entry, ok
}

// Put publishes a snapshot for a key.
func (c *GlossaryCache) Put(key string, entry driven.CacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry
}

// Len returns the number of cached entries.
func (c *GlossaryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
