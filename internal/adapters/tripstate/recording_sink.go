package tripstate

import (
	"context"
	"sync"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
)

// RecordingSink captures emitted trip-state events in memory. Used by tests
// to assert on removal signals and route-focus payloads.
type RecordingSink struct {
	mu      sync.Mutex
	Removed []string
	Focused []domain.RouteFocus
}

func NewRecordingSink() *RecordingSink {
	return &RecordingSink{}
}

func (s *RecordingSink) PlaceRemoved(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Removed = append(s.Removed, id)
	return nil
}

func (s *RecordingSink) RouteFocused(ctx context.Context, focus domain.RouteFocus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Focused = append(s.Focused, focus)
	return nil
}

var _ ports.TripStateSink = (*RecordingSink)(nil)
