package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/platform/obs"
	"trip-itinerary-service/internal/ports"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://router.project-osrm.org"

// OSRMProvider implements RoutingProvider using the public OSRM HTTP API
// (driving profile).
//
// It coordinates:
//   - Persistent route-result caching
//   - Client-side rate limiting against the shared public endpoint
//   - External API calls with retry/backoff
//
// The provider is safe for concurrent use.
type OSRMProvider struct {
	session *http.Client
	baseURL string
	profile string
	limiter *rate.Limiter
	cache   ports.RouteCache
}

func NewOSRMProvider(baseURL string, cache ports.RouteCache) *OSRMProvider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &OSRMProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		profile: "driving",
		// The public OSRM demo server asks clients to stay around 1 rps.
		limiter: rate.NewLimiter(1, 1),
		cache:   cache,
	}
}

type osrmRoute struct {
	Distance float64 `json:"distance"`
	Duration float64 `json:"duration"`
}

type osrmResponse struct {
	Code   string      `json:"code"`
	Routes []osrmRoute `json:"routes"`
}

// RouteLeg returns driving distance and duration between two points.
// An answer without a usable route maps to ports.ErrNoRoute.
func (p *OSRMProvider) RouteLeg(
	ctx context.Context,
	from, to domain.Coordinates,
) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "osrm.RouteLeg")(&err)

	if !from.Valid() || !to.Valid() {
		return ports.RouteResult{}, fmt.Errorf("route leg: malformed coordinates from=%+v to=%+v", from, to)
	}

	// Check the persistent route cache before issuing external API calls.
	if p.cache != nil {
		cached, ok, err := p.cache.Get(ctx, from, to)
		if err != nil {
			log.Printf("route cache read failed: %v", err)
		} else if ok {
			return cached, nil
		}
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return ports.RouteResult{}, fmt.Errorf("route leg: rate limiter: %w", err)
	}

	// OSRM expects {lng},{lat} pairs in the path.
	endpoint := fmt.Sprintf(
		"%s/route/v1/%s/%f,%f;%f,%f?overview=false",
		p.baseURL, p.profile, from.Lng, from.Lat, to.Lng, to.Lat,
	)

	resp, err := p.doWithRetry(ctx, func() (*http.Request, error) {
		return p.newRequest(ctx, http.MethodGet, endpoint)
	})
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("route leg: request failed: %w", err)
	}
	defer resp.Body.Close()

	var or osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return ports.RouteResult{}, fmt.Errorf("route leg: decode response: %w", err)
	}

	if or.Code != "Ok" || len(or.Routes) == 0 {
		return ports.RouteResult{}, fmt.Errorf("route leg: code=%q routes=%d: %w", or.Code, len(or.Routes), ports.ErrNoRoute)
	}

	result := ports.RouteResult{
		DistanceMeters:  or.Routes[0].Distance,
		DurationSeconds: or.Routes[0].Duration,
	}

	if p.cache != nil {
		if err := p.cache.Put(ctx, from, to, result); err != nil {
			log.Printf("route cache write failed: %v", err)
		}
	}

	return result, nil
}

var _ ports.RoutingProvider = (*OSRMProvider)(nil)
