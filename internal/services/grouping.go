package services

import (
	"sort"

	"trip-itinerary-service/internal/domain"
)

// GroupByDay partitions entries into per-day buckets keyed by ISO date.
// The relative order of entries within a bucket matches their order in the
// canonical collection; it is the visiting sequence for that day and is
// never sorted here.
func GroupByDay(entries []*domain.ItineraryEntry) map[string][]*domain.ItineraryEntry {
	buckets := make(map[string][]*domain.ItineraryEntry)
	for _, e := range entries {
		buckets[e.Date] = append(buckets[e.Date], e)
	}
	return buckets
}

// SortedDayKeys returns the bucket keys in ascending lexicographic order,
// which is chronological order for valid ISO dates.
func SortedDayKeys(buckets map[string][]*domain.ItineraryEntry) []string {
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
