package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"

	"github.com/redis/go-redis/v9"
)

// RedisRouteCache is a Redis-backed cache for point-to-point route results.
// Entries expire after a fixed TTL; road networks change slowly, so a week of
// staleness is acceptable for itinerary display.
type RedisRouteCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRouteCache(client *redis.Client) *RedisRouteCache {
	return &RedisRouteCache{
		client: client,
		ttl:    7 * 24 * time.Hour,
	}
}

func (c *RedisRouteCache) key(from, to domain.Coordinates) string {
	return "route:" + coordKey(from) + "|" + coordKey(to)
}

// Get returns the cached result for a coordinate pair, if present.
func (c *RedisRouteCache) Get(
	ctx context.Context,
	from, to domain.Coordinates,
) (ports.RouteResult, bool, error) {
	if c.client == nil {
		return ports.RouteResult{}, false, errors.New("route cache: redis client is nil")
	}

	val, err := c.client.Get(ctx, c.key(from, to)).Result()
	if errors.Is(err, redis.Nil) {
		return ports.RouteResult{}, false, nil
	}
	if err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("get route cache: %w", err)
	}

	var meters, seconds float64
	if _, err := fmt.Sscanf(val, "%f|%f", &meters, &seconds); err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("get route cache: parse value %q: %w", val, err)
	}

	return ports.RouteResult{DistanceMeters: meters, DurationSeconds: seconds}, true, nil
}

// Put stores the result for a coordinate pair.
func (c *RedisRouteCache) Put(
	ctx context.Context,
	from, to domain.Coordinates,
	result ports.RouteResult,
) error {
	if c.client == nil {
		return errors.New("route cache: redis client is nil")
	}

	val := fmt.Sprintf("%f|%f", result.DistanceMeters, result.DurationSeconds)
	if err := c.client.Set(ctx, c.key(from, to), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("insert route cache: %w", err)
	}
	return nil
}

var _ ports.RouteCache = (*RedisRouteCache)(nil)
