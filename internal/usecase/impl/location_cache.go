package impl

import (
	"sync"

	"campusradar/internal/domain/entity"
	"campusradar/internal/infra/metrics"
)

// locationCache memoizes user locations by user id. Entries live until Clear.
type locationCache struct {
	mu      sync.Mutex
	entries map[string]entity.Coordinate
	metrics *metrics.Recorder
}

func newLocationCache(recorder *metrics.Recorder) *locationCache {
	return &locationCache{
		entries: make(map[string]entity.Coordinate),
		metrics: recorder,
	}
}

// Get returns the cached location of id.
func (c *locationCache) Get(id string) (entity.Coordinate, bool) {
	c.mu.Lock()
	loc, ok := c.entries[id]
	c.mu.Unlock()

	c.metrics.CacheLookup(ok)

	return loc, ok
}

// peek is Get without lookup accounting.
func (c *locationCache) peek(id string) (entity.Coordinate, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	loc, ok := c.entries[id]

	return loc, ok
}

// Put stores loc for id, replacing any previous entry.
func (c *locationCache) Put(id string, loc entity.Coordinate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[id] = loc
}

func (c *locationCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
}

func (c *locationCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
