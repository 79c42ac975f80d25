package ports

import (
	"context"
	"errors"

	"trip-itinerary-service/internal/domain"
)

// ErrNoRoute signals that the provider answered but produced no usable route
// between the two points. Callers treat it the same as a transport failure:
// the leg is unavailable, never guessed.
var ErrNoRoute = errors.New("no route found")

// RouteResult is a raw routing answer in provider units.
type RouteResult struct {
	DistanceMeters  float64
	DurationSeconds float64
}

// RoutingProvider is the contract for live driving-equivalent routing between
// two coordinates.
type RoutingProvider interface {
	// RouteLeg returns travel distance and duration from one point to another.
	RouteLeg(ctx context.Context, from, to domain.Coordinates) (RouteResult, error)
}
