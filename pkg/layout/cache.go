package layout

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of grids a Cache keeps when NewCache is
// given a non-positive size.
const DefaultCacheSize = 16

// cacheKey uniquely identifies a layout computation.
type cacheKey struct {
	viewport Size
	cfg      Config
}

// Cache stores recently computed grids so that returning to a previous
// viewport size (or configuration) reuses the identical snapshot instead of
// recomputing it. Grids are immutable, so entries are shared, not copied.
// It is safe for concurrent use.
type Cache struct {
	entries *lru.Cache[cacheKey, *Grid]
}

// NewCache creates an empty cache holding at most size grids.
func NewCache(size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	// lru.New only fails for non-positive sizes.
	entries, _ := lru.New[cacheKey, *Grid](size)
	return &Cache{entries: entries}
}

// Get looks up a cached grid. Returns nil if not found.
func (c *Cache) Get(viewport Size, cfg Config) *Grid {
	g, ok := c.entries.Get(cacheKey{viewport: viewport, cfg: cfg})
	if !ok {
		return nil
	}
	return g
}

// Put stores a grid under the viewport and configuration it was computed
// from.
func (c *Cache) Put(g *Grid) {
	c.entries.Add(cacheKey{viewport: g.Viewport, cfg: g.Config}, g)
}

// Compute returns the cached grid for (viewport, cfg), computing and
// storing it on a miss.
func (c *Cache) Compute(viewport Size, cfg Config) *Grid {
	if g := c.Get(viewport, cfg); g != nil {
		return g
	}
	g := Compute(viewport, cfg)
	c.Put(g)
	return g
}

// Invalidate clears all cached entries.
func (c *Cache) Invalidate() {
	c.entries.Purge()
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return c.entries.Len()
}
