package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"trip-itinerary-service/internal/adapters/routing"
	"trip-itinerary-service/internal/domain"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestSimulateIdenticalCoordinates(t *testing.T) {
	est := NewEstimator(nil)
	c := domain.Coordinates{Lat: 13.0, Lng: 80.2}

	for _, mode := range []TransportMode{ModeBus, ModeTrain, ModeFlight} {
		got, err := est.Simulate(c, c, mode)
		if err != nil {
			t.Fatalf("mode %s: unexpected error: %v", mode, err)
		}
		if got.DistanceKm != 0 || got.DurationHr != 0 || got.Fare != 0 {
			t.Errorf("mode %s: expected zero estimate, got %+v", mode, got)
		}
	}
}

func TestSimulateTrainLeg(t *testing.T) {
	est := NewEstimator(nil)
	from := domain.Coordinates{Lat: 13.00, Lng: 80.20}
	to := domain.Coordinates{Lat: 13.05, Lng: 80.25}

	got, err := est.Simulate(from, to, ModeTrain)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Great-circle distance for this pair is a bit under 8 km.
	if got.DistanceKm < 7.0 || got.DistanceKm > 8.5 {
		t.Fatalf("distance = %f, want roughly 7-8.5 km", got.DistanceKm)
	}
	if !approxEqual(got.DurationHr, got.DistanceKm/120, 1e-9) {
		t.Errorf("duration = %f, want distance/120 = %f", got.DurationHr, got.DistanceKm/120)
	}
	if !approxEqual(got.Fare, got.DistanceKm*0.8, 1e-9) {
		t.Errorf("fare = %f, want distance*0.8 = %f", got.Fare, got.DistanceKm*0.8)
	}
}

func TestSimulateModeTable(t *testing.T) {
	est := NewEstimator(nil)
	from := domain.Coordinates{Lat: 12.9, Lng: 80.1}
	to := domain.Coordinates{Lat: 13.1, Lng: 80.3}

	bus, err := est.Simulate(from, to, ModeBus)
	if err != nil {
		t.Fatalf("bus: unexpected error: %v", err)
	}
	flight, err := est.Simulate(from, to, ModeFlight)
	if err != nil {
		t.Fatalf("flight: unexpected error: %v", err)
	}

	if bus.DistanceKm != flight.DistanceKm {
		t.Fatalf("distance differs by mode: bus=%f flight=%f", bus.DistanceKm, flight.DistanceKm)
	}
	if !approxEqual(bus.DurationHr, bus.DistanceKm/60, 1e-9) {
		t.Errorf("bus duration = %f, want %f", bus.DurationHr, bus.DistanceKm/60)
	}
	if !approxEqual(flight.DurationHr, flight.DistanceKm/800, 1e-9) {
		t.Errorf("flight duration = %f, want %f", flight.DurationHr, flight.DistanceKm/800)
	}
	if !approxEqual(bus.Fare, bus.DistanceKm*1.5, 1e-9) {
		t.Errorf("bus fare = %f, want %f", bus.Fare, bus.DistanceKm*1.5)
	}
	if !approxEqual(flight.Fare, flight.DistanceKm*6.0, 1e-9) {
		t.Errorf("flight fare = %f, want %f", flight.Fare, flight.DistanceKm*6.0)
	}
}

func TestSimulateUnknownMode(t *testing.T) {
	est := NewEstimator(nil)
	from := domain.Coordinates{Lat: 12.9, Lng: 80.1}
	to := domain.Coordinates{Lat: 13.1, Lng: 80.3}

	if _, err := est.Simulate(from, to, TransportMode("teleport")); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestEstimateMalformedCoordinates(t *testing.T) {
	est := NewEstimator(nil)
	bad := domain.Coordinates{Lat: 91, Lng: 80.2}
	ok := domain.Coordinates{Lat: 13.0, Lng: 80.2}

	if _, err := est.Estimate(context.Background(), bad, ok, ModeTrain); err == nil {
		t.Fatal("expected error for out-of-range latitude")
	}
	if _, err := est.Estimate(context.Background(), ok, domain.Coordinates{Lat: 13, Lng: math.NaN()}, ModeBus); err == nil {
		t.Fatal("expected error for NaN longitude")
	}
}

func TestEstimateLiveModeConvertsUnits(t *testing.T) {
	from := domain.Coordinates{Lat: 13.00, Lng: 80.20}
	to := domain.Coordinates{Lat: 13.05, Lng: 80.25}

	provider := routing.NewMockRoutingProvider([]routing.MockLeg{
		{From: from, To: to, Meters: 1500, Seconds: 1800},
	})
	est := NewEstimator(provider)

	got, err := est.Estimate(context.Background(), from, to, ModeDriving)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(got.DistanceKm, 1.5, 1e-9) {
		t.Errorf("distance = %f, want 1.5", got.DistanceKm)
	}
	if !approxEqual(got.DurationHr, 0.5, 1e-9) {
		t.Errorf("duration = %f, want 0.5", got.DurationHr)
	}
	if got.Fare != 0 {
		t.Errorf("fare = %f, want 0 for live mode", got.Fare)
	}
}

func TestEstimateProviderFailureIsUnavailable(t *testing.T) {
	provider := routing.NewMockRoutingProvider(nil)
	est := NewEstimator(provider)

	from := domain.Coordinates{Lat: 13.00, Lng: 80.20}
	to := domain.Coordinates{Lat: 13.05, Lng: 80.25}

	_, err := est.Estimate(context.Background(), from, to, ModeDriving)
	if !errors.Is(err, ErrEstimateUnavailable) {
		t.Fatalf("expected ErrEstimateUnavailable, got %v", err)
	}
}
