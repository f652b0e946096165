package geocoding

import (
	"context"
	"sync"
	"time"

	"projectmatch-service/internal/models"
)

// MemoryCache is the in-process cache layer. Entries expire after the TTL
// and a background sweep clears them out.
type MemoryCache struct {
	entries sync.Map // map[string]*memoryCacheEntry
	ttl     time.Duration
}

type memoryCacheEntry struct {
	cities    []models.City
	createdAt time.Time
}

// NewMemoryCache creates a MemoryCache with the given TTL and starts the
// expiry sweep.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	mc := &MemoryCache{ttl: ttl}
	go mc.cleanupExpired()
	return mc
}

func (mc *MemoryCache) Name() string {
	return "memory"
}

func (mc *MemoryCache) Get(_ context.Context, query string) ([]models.City, bool) {
	value, ok := mc.entries.Load(query)
	if !ok {
		return nil, false
	}
	entry := value.(*memoryCacheEntry)
	if time.Since(entry.createdAt) > mc.ttl {
		mc.entries.Delete(query)
		return nil, false
	}
	return entry.cities, true
}

func (mc *MemoryCache) Store(_ context.Context, query string, cities []models.City) {
	mc.entries.Store(query, &memoryCacheEntry{
		cities:    cities,
		createdAt: time.Now(),
	})
}

func (mc *MemoryCache) cleanupExpired() {
	ticker := time.NewTicker(mc.ttl)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		mc.entries.Range(func(key, value any) bool {
			if now.Sub(value.(*memoryCacheEntry).createdAt) > mc.ttl {
				mc.entries.Delete(key)
			}
			return true
		})
	}
}
