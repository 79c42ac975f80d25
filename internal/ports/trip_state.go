package ports

import (
	"context"

	"trip-itinerary-service/internal/domain"
)

// TripStateSink receives itinerary events produced for external collaborators:
// the trip record drops place references on removal, and the map display
// renders focused legs.
type TripStateSink interface {
	// PlaceRemoved signals that an entry was removed from the itinerary.
	PlaceRemoved(ctx context.Context, id string) error
	// RouteFocused signals that a leg should be rendered on the map.
	RouteFocused(ctx context.Context, focus domain.RouteFocus) error
}
