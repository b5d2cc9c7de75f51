package cache

import "time"

// LayeredCache reads from a fast layer before a persistent one and writes
// through both. A restarted process warms its memory layer from whatever
// the previous run left on disk.
type LayeredCache struct {
	memory Cache
	disk   Cache
}

// NewLayeredCache combines a fast and a persistent layer.
func NewLayeredCache(memory, disk Cache) *LayeredCache {
	return &LayeredCache{memory: memory, disk: disk}
}

// Get checks memory first. A disk hit is promoted so the next lookup for
// the same key stays off the filesystem.
func (c *LayeredCache) Get(key string) ([]byte, bool) {
	if article, ok := c.memory.Get(key); ok {
		return article, true
	}
	article, ok := c.disk.Get(key)
	if !ok {
		return nil, false
	}
	_ = c.memory.Set(key, article, 0)
	return article, true
}

// Set writes through both layers.
func (c *LayeredCache) Set(key string, value []byte, ttl time.Duration) error {
	if err := c.memory.Set(key, value, ttl); err != nil {
		return err
	}
	return c.disk.Set(key, value, ttl)
}

// Delete removes the key from both layers.
func (c *LayeredCache) Delete(key string) error {
	if err := c.memory.Delete(key); err != nil {
		return err
	}
	return c.disk.Delete(key)
}

// Clear empties both layers.
func (c *LayeredCache) Clear() error {
	if err := c.memory.Clear(); err != nil {
		return err
	}
	return c.disk.Clear()
}
