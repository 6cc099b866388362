// cache.go provides the in-memory cache for parsed templates. Parsing is
// deterministic and idempotent, so the cache follows an insert-or-reuse
// discipline: two callers that miss on the same id may both parse and
// insert, and the last write wins with an identical value.
package store

import (
	"log/slog"
	"sync"

	"adforge/internal/models"
)

// Cache is a concurrency-safe in-memory cache of parsed templates keyed
// by template id. Entries live for the process lifetime unless something
// (the fsnotify watcher, a test) explicitly invalidates them.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*models.Template
}

// NewCache creates an empty template cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]*models.Template),
	}
}

// Get retrieves a cached template. Returns nil on miss.
func (c *Cache) Get(id string) *models.Template {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[id]
}

// Put stores a parsed template in the cache.
func (c *Cache) Put(id string, t *models.Template) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[id] = t
	slog.Debug("template cached", "id", id, "size", len(c.entries))
}

// Invalidate removes a single template from the cache.
func (c *Cache) Invalidate(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
	slog.Debug("template cache invalidated", "id", id)
}

// InvalidateAll clears the entire cache.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*models.Template)
	slog.Debug("template cache fully cleared")
}

// Len returns the number of cached templates.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
