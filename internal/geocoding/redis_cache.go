package geocoding

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"projectmatch-service/internal/models"
	"projectmatch-service/internal/storage"
)

// RedisCache is the shared cache layer, surviving process restarts and
// shared between replicas. Redis failures count as misses.
type RedisCache struct {
	redis *storage.RedisClient
	ttl   time.Duration
}

// NewRedisCache creates a RedisCache over the given client with the given TTL.
func NewRedisCache(redis *storage.RedisClient, ttl time.Duration) *RedisCache {
	return &RedisCache{redis: redis, ttl: ttl}
}

func (rc *RedisCache) Name() string {
	return "redis"
}

func redisKey(query string) string {
	return "geocode:" + query
}

func (rc *RedisCache) Get(ctx context.Context, query string) ([]models.City, bool) {
	data, found, err := rc.redis.Get(ctx, redisKey(query))
	if err != nil {
		log.Printf("geocode cache: redis get failed for %q: %v", query, err)
		return nil, false
	}
	if !found {
		return nil, false
	}

	var cities []models.City
	if err := json.Unmarshal(data, &cities); err != nil {
		log.Printf("geocode cache: corrupt entry for %q: %v", query, err)
		return nil, false
	}
	return cities, true
}

func (rc *RedisCache) Store(ctx context.Context, query string, cities []models.City) {
	data, err := json.Marshal(cities)
	if err != nil {
		return
	}
	if err := rc.redis.Set(ctx, redisKey(query), data, rc.ttl); err != nil {
		log.Printf("geocode cache: redis set failed for %q: %v", query, err)
	}
}
