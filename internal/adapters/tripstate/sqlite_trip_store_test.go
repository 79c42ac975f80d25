package tripstate

import (
	"context"
	"database/sql"
	"testing"

	"trip-itinerary-service/internal/adapters/repositories"
	"trip-itinerary-service/internal/domain"

	_ "modernc.org/sqlite"
)

func newTestStore(t *testing.T) (*SqliteTripStore, *sql.DB) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := repositories.InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return NewSqliteTripStore(db), db
}

func TestPlaceRemovedDropsReference(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	if _, err := db.Exec(`INSERT INTO trip_places (place_id) VALUES ('beach'), ('temple');`); err != nil {
		t.Fatalf("seed trip places: %v", err)
	}

	if err := store.PlaceRemoved(ctx, "beach"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM trip_places;`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("trip places = %d, want 1", count)
	}

	// Removing an unreferenced place is not an error.
	if err := store.PlaceRemoved(ctx, "ghost"); err != nil {
		t.Fatalf("unexpected error for unreferenced place: %v", err)
	}
}

func TestRouteFocusedKeepsLatestOnly(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	first := domain.RouteFocus{
		FromLabel: "Start",
		ToLabel:   "Beach",
		ToCoords:  domain.Coordinates{Lat: 13.05, Lng: 80.28},
	}
	second := domain.RouteFocus{
		FromLabel:  "Beach",
		FromCoords: &domain.Coordinates{Lat: 13.05, Lng: 80.28},
		ToLabel:    "Temple",
		ToCoords:   domain.Coordinates{Lat: 13.03, Lng: 80.27},
	}

	if err := store.RouteFocused(ctx, first); err != nil {
		t.Fatalf("first focus: %v", err)
	}
	if err := store.RouteFocused(ctx, second); err != nil {
		t.Fatalf("second focus: %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM route_focus;`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("route_focus rows = %d, want 1", count)
	}

	var fromLabel, toLabel string
	var fromLat sql.NullFloat64
	err := db.QueryRow(`SELECT from_label, from_lat, to_label FROM route_focus WHERE focus_id = 1;`).
		Scan(&fromLabel, &fromLat, &toLabel)
	if err != nil {
		t.Fatalf("read focus: %v", err)
	}
	if fromLabel != "Beach" || toLabel != "Temple" {
		t.Fatalf("stored focus = %s -> %s, want Beach -> Temple", fromLabel, toLabel)
	}
	if !fromLat.Valid {
		t.Error("expected from_lat to be set")
	}
}
