package geocoding

import (
	"context"
	"strings"

	"projectmatch-service/internal/metrics"
	"projectmatch-service/internal/models"
)

// CityCache is one cache layer for geocoding results.
type CityCache interface {
	Name() string
	Get(ctx context.Context, query string) ([]models.City, bool)
	Store(ctx context.Context, query string, cities []models.City)
}

// LayeredCache tries each layer in order on lookup and promotes hits into
// the layers that missed. Stores write through to every layer.
type LayeredCache struct {
	layers  []CityCache
	metrics *metrics.Collector
}

// NewLayeredCache creates a LayeredCache over the given layers, fastest first.
func NewLayeredCache(collector *metrics.Collector, layers ...CityCache) *LayeredCache {
	return &LayeredCache{layers: layers, metrics: collector}
}

func cacheKey(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Get looks the query up layer by layer.
func (c *LayeredCache) Get(ctx context.Context, query string) ([]models.City, bool) {
	key := cacheKey(query)
	for i, layer := range c.layers {
		cities, ok := layer.Get(ctx, key)
		if c.metrics != nil {
			c.metrics.RecordGeocodeCacheLookup(layer.Name(), ok)
		}
		if !ok {
			continue
		}
		// Promote into the faster layers that missed.
		for j := 0; j < i; j++ {
			c.layers[j].Store(ctx, key, cities)
		}
		return cities, true
	}
	return nil, false
}

// Store writes the result through every layer.
func (c *LayeredCache) Store(ctx context.Context, query string, cities []models.City) {
	key := cacheKey(query)
	for _, layer := range c.layers {
		layer.Store(ctx, key, cities)
	}
}
