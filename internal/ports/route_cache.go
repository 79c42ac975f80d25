package ports

import (
	"context"

	"trip-itinerary-service/internal/domain"
)

// RouteCache is a persistent cache of point-to-point routing results,
// consulted by routing adapters before issuing external API calls.
type RouteCache interface {
	// Get returns the cached result for a coordinate pair, if present.
	Get(ctx context.Context, from, to domain.Coordinates) (RouteResult, bool, error)
	// Put stores the result for a coordinate pair.
	Put(ctx context.Context, from, to domain.Coordinates, result RouteResult) error
}
