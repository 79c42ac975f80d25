package tripstate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
)

// SQLite-backed implementation of the TripStateSink port.
//
// Removals drop the corresponding place reference from the trip record.
// Route-focus events overwrite a single "current route" row that the map
// display reads; only the latest focus matters.
type SqliteTripStore struct{ DB *sql.DB }

func NewSqliteTripStore(db *sql.DB) *SqliteTripStore {
	return &SqliteTripStore{DB: db}
}

// PlaceRemoved drops the place reference from the trip record. Removing an
// unreferenced place is not an error.
func (s *SqliteTripStore) PlaceRemoved(ctx context.Context, id string) error {
	if s.DB == nil {
		return errors.New("trip store: DB is nil")
	}

	if _, err := s.DB.ExecContext(ctx, `DELETE FROM trip_places WHERE place_id = ?;`, id); err != nil {
		return fmt.Errorf("remove trip place %q: %w", id, err)
	}
	return nil
}

// RouteFocused records the focused leg as the current route.
func (s *SqliteTripStore) RouteFocused(ctx context.Context, focus domain.RouteFocus) error {
	if s.DB == nil {
		return errors.New("trip store: DB is nil")
	}

	var fromLat, fromLng *float64
	if focus.FromCoords != nil {
		fromLat = &focus.FromCoords.Lat
		fromLng = &focus.FromCoords.Lng
	}

	q := `
	INSERT OR REPLACE INTO route_focus (
		focus_id,
		from_label,
		from_lat,
		from_lng,
		to_label,
		to_lat,
		to_lng
	)
	VALUES (1, ?, ?, ?, ?, ?, ?);
	`

	_, err := s.DB.ExecContext(ctx, q,
		focus.FromLabel, fromLat, fromLng,
		focus.ToLabel, focus.ToCoords.Lat, focus.ToCoords.Lng,
	)
	if err != nil {
		return fmt.Errorf("record route focus: %w", err)
	}
	return nil
}

var _ ports.TripStateSink = (*SqliteTripStore)(nil)
