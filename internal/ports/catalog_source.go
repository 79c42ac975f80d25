package ports

import (
	"context"

	"trip-itinerary-service/internal/domain"
)

// Port: a read-only boundary for the place catalog users pick stops from.
type CatalogSource interface {
	// Retrieve all places available for selection.
	ListPlaces(ctx context.Context) ([]domain.Place, error)
	// GetPlace returns a single place by its catalog ID.
	GetPlace(ctx context.Context, id string) (domain.Place, error)
}
