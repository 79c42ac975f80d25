package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
)

// SQLite-backed cache for point-to-point route results. Used when no Redis
// instance is configured, so single-binary local runs still avoid repeated
// calls against the public routing endpoint.
type SqliteRouteCache struct {
	DB *sql.DB
}

func NewSqliteRouteCache(db *sql.DB) *SqliteRouteCache {
	return &SqliteRouteCache{DB: db}
}

// Get returns the cached result for a coordinate pair, if present.
func (s *SqliteRouteCache) Get(
	ctx context.Context,
	from, to domain.Coordinates,
) (ports.RouteResult, bool, error) {
	if s.DB == nil {
		return ports.RouteResult{}, false, errors.New("route cache: db is nil")
	}

	q := `
	SELECT distance_meters, duration_seconds
	FROM route_cache
	WHERE origin = ? AND destination = ?;
	`

	var meters, seconds float64
	err := s.DB.QueryRowContext(ctx, q, coordKey(from), coordKey(to)).Scan(&meters, &seconds)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.RouteResult{}, false, nil
	}
	if err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	return ports.RouteResult{DistanceMeters: meters, DurationSeconds: seconds}, true, nil
}

// Put stores the result for a coordinate pair.
func (s *SqliteRouteCache) Put(
	ctx context.Context,
	from, to domain.Coordinates,
	result ports.RouteResult,
) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	q := `
	INSERT OR REPLACE INTO route_cache (
		origin,
		destination,
		distance_meters,
		duration_seconds
	)
	VALUES (?, ?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, coordKey(from), coordKey(to), result.DistanceMeters, result.DurationSeconds); err != nil {
		return fmt.Errorf("insert route cache: %w", err)
	}
	return nil
}

var _ ports.RouteCache = (*SqliteRouteCache)(nil)
