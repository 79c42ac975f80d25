package services

import "trip-itinerary-service/internal/domain"

// NearestNeighborOrder reorders one day's entries using a greedy
// nearest-neighbor heuristic.
//
// The algorithm anchors at the day's first coordinate-bearing entry and
// repeatedly visits the closest unvisited entry. Closeness is squared
// Euclidean distance in raw lat/lng space; that is a knowingly coarse
// approximation, acceptable because it only affects selection order, never
// the reported leg metrics. Ties keep the first candidate in iteration
// order, so the result is deterministic for a given input order.
//
// Entries without coordinates are appended after the reordered positioned
// entries, preserving their relative order. Fewer than 3 positioned entries
// is a defined no-op: the input order is returned unchanged.
func NearestNeighborOrder(dayEntries []*domain.ItineraryEntry) []*domain.ItineraryEntry {
	positioned := make([]*domain.ItineraryEntry, 0, len(dayEntries))
	unpositioned := make([]*domain.ItineraryEntry, 0)
	for _, e := range dayEntries {
		if e.Positioned() {
			positioned = append(positioned, e)
		} else {
			unpositioned = append(unpositioned, e)
		}
	}

	if len(positioned) < 3 {
		out := make([]*domain.ItineraryEntry, len(dayEntries))
		copy(out, dayEntries)
		return out
	}

	remaining := make([]*domain.ItineraryEntry, len(positioned))
	copy(remaining, positioned)

	ordered := make([]*domain.ItineraryEntry, 0, len(dayEntries))
	current := remaining[0]
	remaining = remaining[1:]
	ordered = append(ordered, current)

	for len(remaining) > 0 {
		bestIdx := 0
		bestCost := squaredPlanarDistance(current, remaining[0])
		for i := 1; i < len(remaining); i++ {
			if cost := squaredPlanarDistance(current, remaining[i]); cost < bestCost {
				bestCost = cost
				bestIdx = i
			}
		}

		current = remaining[bestIdx]
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
		ordered = append(ordered, current)
	}

	return append(ordered, unpositioned...)
}

func squaredPlanarDistance(a, b *domain.ItineraryEntry) float64 {
	dLat := a.Coords.Lat - b.Coords.Lat
	dLng := a.Coords.Lng - b.Coords.Lng
	return dLat*dLat + dLng*dLng
}
