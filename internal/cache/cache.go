// Package cache stores rendered articles so repeated requests for the same
// selection do not rerun the generation pipeline.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jtoivan/statnews/internal/model"
)

// Cache defines the interface for article caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Backends selectable through the cache configuration.
const (
	BackendMemory  = "memory"
	BackendDisk    = "disk"
	BackendLayered = "layered"
)

// ForConfig builds the configured backend. An empty backend name selects
// the in-memory cache.
func ForConfig(cfg model.CacheConfig) (Cache, error) {
	switch cfg.Backend {
	case "", BackendMemory:
		return NewMemoryCache(cfg.TTL, cfg.CleanupInterval), nil
	case BackendDisk:
		if cfg.Dir == "" {
			return nil, errors.New("disk cache needs a directory")
		}
		return NewDiskCache(cfg.Dir, cfg.TTL), nil
	case BackendLayered:
		if cfg.Dir == "" {
			return nil, errors.New("layered cache needs a directory")
		}
		memory := NewMemoryCache(cfg.TTL, cfg.CleanupInterval)
		return NewLayeredCache(memory, NewDiskCache(cfg.Dir, cfg.TTL)), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// ArticleKey generates a cache key for one article selection
func ArticleKey(language, dataset, location, locationType string) string {
	selection := strings.Join([]string{language, dataset, location, locationType}, "|")
	hash := sha256.Sum256([]byte(selection))
	return "statnews:v1:" + hex.EncodeToString(hash[:])
}
