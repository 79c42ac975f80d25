package routing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
)

func TestRouteLegParsesResponse(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":"Ok","routes":[{"distance":7300.5,"duration":1240.2}]}`))
	}))
	defer srv.Close()

	p := NewOSRMProvider(srv.URL, nil)
	got, err := p.RouteLeg(context.Background(),
		domain.Coordinates{Lat: 13.00, Lng: 80.20},
		domain.Coordinates{Lat: 13.05, Lng: 80.25},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DistanceMeters != 7300.5 {
		t.Errorf("distance = %f, want 7300.5", got.DistanceMeters)
	}
	if got.DurationSeconds != 1240.2 {
		t.Errorf("duration = %f, want 1240.2", got.DurationSeconds)
	}
	// OSRM wants lng,lat pair order in the path.
	if !strings.HasPrefix(gotPath, "/route/v1/driving/80.2") {
		t.Errorf("unexpected request path %q", gotPath)
	}
}

func TestRouteLegNoRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
	}))
	defer srv.Close()

	p := NewOSRMProvider(srv.URL, nil)
	_, err := p.RouteLeg(context.Background(),
		domain.Coordinates{Lat: 13.00, Lng: 80.20},
		domain.Coordinates{Lat: 13.05, Lng: 80.25},
	)
	if !errors.Is(err, ports.ErrNoRoute) {
		t.Fatalf("expected ErrNoRoute, got %v", err)
	}
}

func TestRouteLegRejectsMalformedCoordinates(t *testing.T) {
	p := NewOSRMProvider("http://unused.invalid", nil)
	_, err := p.RouteLeg(context.Background(),
		domain.Coordinates{Lat: 200, Lng: 80.20},
		domain.Coordinates{Lat: 13.05, Lng: 80.25},
	)
	if err == nil {
		t.Fatal("expected error for out-of-range latitude")
	}
}

type stubCache struct {
	result ports.RouteResult
	hit    bool
	puts   int
}

func (s *stubCache) Get(ctx context.Context, from, to domain.Coordinates) (ports.RouteResult, bool, error) {
	return s.result, s.hit, nil
}

func (s *stubCache) Put(ctx context.Context, from, to domain.Coordinates, result ports.RouteResult) error {
	s.puts++
	s.result = result
	return nil
}

func TestRouteLegServesFromCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called on a cache hit")
	}))
	defer srv.Close()

	sc := &stubCache{result: ports.RouteResult{DistanceMeters: 500, DurationSeconds: 60}, hit: true}
	p := NewOSRMProvider(srv.URL, sc)

	got, err := p.RouteLeg(context.Background(),
		domain.Coordinates{Lat: 13.00, Lng: 80.20},
		domain.Coordinates{Lat: 13.05, Lng: 80.25},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DistanceMeters != 500 {
		t.Fatalf("distance = %f, want cached 500", got.DistanceMeters)
	}
}

func TestRouteLegStoresResultInCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"Ok","routes":[{"distance":1000,"duration":120}]}`))
	}))
	defer srv.Close()

	sc := &stubCache{}
	p := NewOSRMProvider(srv.URL, sc)

	if _, err := p.RouteLeg(context.Background(),
		domain.Coordinates{Lat: 13.00, Lng: 80.20},
		domain.Coordinates{Lat: 13.05, Lng: 80.25},
	); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sc.puts != 1 {
		t.Fatalf("cache puts = %d, want 1", sc.puts)
	}
}
