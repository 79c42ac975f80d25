package cache

import (
	"context"
	"testing"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) *RedisRouteCache {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisRouteCache(client)
}

func TestRedisRouteCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	from := domain.Coordinates{Lat: 13.00, Lng: 80.20}
	to := domain.Coordinates{Lat: 13.05, Lng: 80.25}
	want := ports.RouteResult{DistanceMeters: 7300.5, DurationSeconds: 1240}

	if err := c.Put(ctx, from, to, want); err != nil {
		t.Fatalf("put: unexpected error: %v", err)
	}

	got, ok, err := c.Get(ctx, from, to)
	if err != nil {
		t.Fatalf("get: unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got.DistanceMeters != want.DistanceMeters || got.DurationSeconds != want.DurationSeconds {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestRedisRouteCacheMiss(t *testing.T) {
	c := newTestCache(t)

	_, ok, err := c.Get(context.Background(),
		domain.Coordinates{Lat: 1, Lng: 2},
		domain.Coordinates{Lat: 3, Lng: 4},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected cache miss")
	}
}

func TestRedisRouteCacheDirectionalKeys(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	from := domain.Coordinates{Lat: 13.00, Lng: 80.20}
	to := domain.Coordinates{Lat: 13.05, Lng: 80.25}

	if err := c.Put(ctx, from, to, ports.RouteResult{DistanceMeters: 100, DurationSeconds: 10}); err != nil {
		t.Fatalf("put: unexpected error: %v", err)
	}

	// One-way streets exist; the reverse direction is a separate key.
	if _, ok, _ := c.Get(ctx, to, from); ok {
		t.Fatal("reverse pair should miss")
	}
}
