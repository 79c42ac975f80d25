package services

import (
	"context"
	"log"
	"sync"

	"trip-itinerary-service/internal/domain"
)

// LegCache holds the last-known travel estimate for each adjacent entry pair
// within a day, keyed by "predecessorId->successorId".
//
// Estimates always reflect driving-equivalent "true travel" between the two
// points, independent of any simulated mode selected elsewhere. Stale keys
// for pairs that are no longer adjacent stay in the cache until overwritten;
// the contract is "last known estimate", not "currently valid estimate".
type LegCache struct {
	mu        sync.RWMutex
	estimator *Estimator
	legs      map[string]domain.Leg
}

func NewLegCache(estimator *Estimator) *LegCache {
	return &LegCache{
		estimator: estimator,
		legs:      make(map[string]domain.Leg),
	}
}

// Recompute estimates every adjacent pair in the coordinate-bearing
// subsequence of one day's ordered entries and merges the results into the
// cache.
//
// Calls against the estimator are sequential: one leg is awaited before the
// next is issued, to avoid bursts against rate-limited public endpoints.
// A failed leg is skipped and left absent; it does not abort the remaining
// legs. Repeated calls with an unchanged day are idempotent (network
// variance aside), and a later recomputation overwrites earlier results
// unconditionally.
func (c *LegCache) Recompute(ctx context.Context, dayEntries []*domain.ItineraryEntry) {
	positioned := make([]*domain.ItineraryEntry, 0, len(dayEntries))
	for _, e := range dayEntries {
		if e.Positioned() {
			positioned = append(positioned, e)
		}
	}

	next := make(map[string]domain.Leg, len(positioned))
	for i := 0; i+1 < len(positioned); i++ {
		a, b := positioned[i], positioned[i+1]
		key := domain.LegKey(a.ID, b.ID)

		est, err := c.estimator.Estimate(ctx, *a.Coords, *b.Coords, ModeDriving)
		if err != nil {
			log.Printf("leg estimate failed pair=%s err=%v (skipped)", key, err)
			continue
		}

		next[key] = domain.Leg{DistanceKm: est.DistanceKm, DurationHr: est.DurationHr}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for k, leg := range next {
		c.legs[k] = leg
	}
}

// Get returns the last-known estimate for an adjacent pair. Absence covers
// both "not yet computed" and "no longer adjacent"; the cache does not
// distinguish the two.
func (c *LegCache) Get(predecessorID, successorID string) (domain.Leg, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	leg, ok := c.legs[domain.LegKey(predecessorID, successorID)]
	return leg, ok
}

// Snapshot returns a copy of the current cache content.
func (c *LegCache) Snapshot() map[string]domain.Leg {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]domain.Leg, len(c.legs))
	for k, v := range c.legs {
		out[k] = v
	}
	return out
}
