package services

import (
	"context"
	"errors"
	"fmt"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"

	"github.com/golang/geo/s2"
)

// Mean Earth radius used for great-circle distances.
const earthRadiusKm = 6371.0

// ErrEstimateUnavailable signals that a leg's external routing call failed or
// returned no usable route. Callers must not substitute a guess silently; the
// leg is simply omitted.
var ErrEstimateUnavailable = errors.New("leg estimate unavailable")

// TransportMode selects how a leg estimate is produced. Live modes are routed
// through the external provider; simulated modes use a closed-form model.
type TransportMode string

const (
	ModeDriving TransportMode = "driving-car"
	ModeHGV     TransportMode = "driving-hgv"
	ModeCycling TransportMode = "cycling-regular"
	ModeWalking TransportMode = "foot-walking"
	ModeBus     TransportMode = "bus"
	ModeTrain   TransportMode = "train"
	ModeFlight  TransportMode = "flight"
)

type modeProfile struct {
	SpeedKmh  float64
	FarePerKm float64
}

// Fixed constants for simulated transit modes.
var simulatedModes = map[TransportMode]modeProfile{
	ModeBus:    {SpeedKmh: 60, FarePerKm: 1.5},
	ModeTrain:  {SpeedKmh: 120, FarePerKm: 0.8},
	ModeFlight: {SpeedKmh: 800, FarePerKm: 6.0},
}

// liveModes are the profiles the routing provider understands.
var liveModes = map[TransportMode]struct{}{
	ModeDriving: {},
	ModeHGV:     {},
	ModeCycling: {},
	ModeWalking: {},
}

// Estimator produces distance/duration/fare estimates between two
// coordinates, either by calling the routing provider or by closed-form
// simulation.
type Estimator struct {
	provider ports.RoutingProvider
}

func NewEstimator(provider ports.RoutingProvider) *Estimator {
	return &Estimator{provider: provider}
}

// Estimate computes the leg metrics for one coordinate pair and transport
// mode. Live modes that fail upstream return ErrEstimateUnavailable;
// simulated modes have no external failure path.
func (e *Estimator) Estimate(
	ctx context.Context,
	from, to domain.Coordinates,
	mode TransportMode,
) (domain.LegEstimate, error) {
	if !from.Valid() || !to.Valid() {
		return domain.LegEstimate{}, fmt.Errorf("estimate leg: malformed coordinates from=%+v to=%+v", from, to)
	}

	if _, ok := liveModes[mode]; ok {
		if e.provider == nil {
			return domain.LegEstimate{}, fmt.Errorf("estimate leg mode=%s: no routing provider: %w", mode, ErrEstimateUnavailable)
		}

		r, err := e.provider.RouteLeg(ctx, from, to)
		if err != nil {
			return domain.LegEstimate{}, fmt.Errorf("estimate leg mode=%s: %v: %w", mode, err, ErrEstimateUnavailable)
		}

		return domain.LegEstimate{
			DistanceKm: clampNonNegative(r.DistanceMeters / 1000),
			DurationHr: clampNonNegative(r.DurationSeconds / 3600),
		}, nil
	}

	return e.Simulate(from, to, mode)
}

// Simulate computes closed-form metrics for a simulated transit mode using
// great-circle distance and the fixed speed/fare table. Identical coordinates
// yield a zero estimate, not an error.
func (e *Estimator) Simulate(from, to domain.Coordinates, mode TransportMode) (domain.LegEstimate, error) {
	if !from.Valid() || !to.Valid() {
		return domain.LegEstimate{}, fmt.Errorf("simulate leg: malformed coordinates from=%+v to=%+v", from, to)
	}

	profile, ok := simulatedModes[mode]
	if !ok {
		return domain.LegEstimate{}, fmt.Errorf("simulate leg: unknown transport mode %q", mode)
	}

	km := HaversineKm(from, to)
	return domain.LegEstimate{
		DistanceKm: km,
		DurationHr: km / profile.SpeedKmh,
		Fare:       km * profile.FarePerKm,
	}, nil
}

// HaversineKm returns the great-circle distance between two points in
// kilometers.
func HaversineKm(from, to domain.Coordinates) float64 {
	a := s2.LatLngFromDegrees(from.Lat, from.Lng)
	b := s2.LatLngFromDegrees(to.Lat, to.Lng)
	return a.Distance(b).Radians() * earthRadiusKm
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
