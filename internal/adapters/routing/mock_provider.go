package routing

import (
	"context"
	"fmt"
	"sync"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
)

type MockLeg struct {
	From, To domain.Coordinates
	Meters   float64
	Seconds  float64
}

// MockRoutingProvider serves canned results for exact coordinate pairs and
// counts calls. Pairs that were not configured fail, which stands in for an
// unreachable or route-less destination.
type MockRoutingProvider struct {
	mu    sync.Mutex
	m     map[string]ports.RouteResult
	calls int
}

func NewMockRoutingProvider(legs []MockLeg) *MockRoutingProvider {
	m := make(map[string]ports.RouteResult, len(legs))
	for _, l := range legs {
		m[pairKey(l.From, l.To)] = ports.RouteResult{DistanceMeters: l.Meters, DurationSeconds: l.Seconds}
	}
	return &MockRoutingProvider{m: m}
}

func (p *MockRoutingProvider) RouteLeg(ctx context.Context, from, to domain.Coordinates) (ports.RouteResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls++
	r, ok := p.m[pairKey(from, to)]
	if !ok {
		return ports.RouteResult{}, fmt.Errorf("missing pair %s: %w", pairKey(from, to), ports.ErrNoRoute)
	}
	return r, nil
}

// CallCount reports how many leg lookups were issued.
func (p *MockRoutingProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func pairKey(from, to domain.Coordinates) string {
	return fmt.Sprintf("%.6f,%.6f|%.6f,%.6f", from.Lat, from.Lng, to.Lat, to.Lng)
}
