package services

import (
	"testing"

	"trip-itinerary-service/internal/domain"
)

func idsOf(entries []*domain.ItineraryEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func TestNearestNeighborOrderReorders(t *testing.T) {
	// Anchor at "a"; nearest-neighbor walks up the line of latitudes.
	a := positionedEntry("a", 0.0, 0.0)
	far := positionedEntry("far", 3.0, 0.0)
	near := positionedEntry("near", 1.0, 0.0)
	mid := positionedEntry("mid", 2.0, 0.0)
	blank := entry("blank", "2025-11-05")

	got := NearestNeighborOrder([]*domain.ItineraryEntry{a, far, near, mid, blank})

	want := []string{"a", "near", "mid", "far", "blank"}
	gotIDs := idsOf(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got %d entries, want %d", len(gotIDs), len(want))
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("order = %v, want %v", gotIDs, want)
		}
	}
}

func TestNearestNeighborOrderNoOpBelowThreshold(t *testing.T) {
	a := positionedEntry("a", 0.0, 0.0)
	b := positionedEntry("b", 1.0, 0.0)
	blank := entry("blank", "2025-11-05")

	got := NearestNeighborOrder([]*domain.ItineraryEntry{b, blank, a})

	want := []string{"b", "blank", "a"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("order = %v, want unchanged %v", idsOf(got), want)
		}
	}
}

func TestNearestNeighborOrderKeepsAllEntries(t *testing.T) {
	in := []*domain.ItineraryEntry{
		positionedEntry("a", 5.0, 2.0),
		positionedEntry("b", 1.0, 9.0),
		positionedEntry("c", 7.0, 7.0),
		positionedEntry("d", 3.0, 3.0),
		entry("x", "2025-11-05"),
		entry("y", "2025-11-05"),
	}

	got := NearestNeighborOrder(in)
	if len(got) != len(in) {
		t.Fatalf("got %d entries, want %d", len(got), len(in))
	}

	seen := make(map[string]int)
	for _, e := range got {
		seen[e.ID]++
	}
	for _, e := range in {
		if seen[e.ID] != 1 {
			t.Errorf("entry %s appears %d times, want exactly once", e.ID, seen[e.ID])
		}
	}

	// Unpositioned entries trail in their original relative order.
	if got[len(got)-2].ID != "x" || got[len(got)-1].ID != "y" {
		t.Errorf("unpositioned tail = %v, want [x y]", idsOf(got[len(got)-2:]))
	}
}

func TestNearestNeighborOrderDoesNotMutateInput(t *testing.T) {
	in := []*domain.ItineraryEntry{
		positionedEntry("a", 0.0, 0.0),
		positionedEntry("c", 2.0, 0.0),
		positionedEntry("b", 1.0, 0.0),
	}

	_ = NearestNeighborOrder(in)

	want := []string{"a", "c", "b"}
	for i, id := range want {
		if in[i].ID != id {
			t.Fatalf("input mutated: %v, want %v", idsOf(in), want)
		}
	}
}
