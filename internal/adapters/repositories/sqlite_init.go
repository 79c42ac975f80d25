package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPlacesQuery := `
	CREATE TABLE IF NOT EXISTS places (
		place_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		lat REAL,
		lng REAL
	);
	`

	createRouteCacheQuery := `
	CREATE TABLE IF NOT EXISTS route_cache (
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        distance_meters REAL NOT NULL,
        duration_seconds REAL NOT NULL,
        PRIMARY KEY (origin, destination)
    );
	`

	createTripPlacesQuery := `
	CREATE TABLE IF NOT EXISTS trip_places (
		place_id TEXT PRIMARY KEY
	);
	`

	createRouteFocusQuery := `
	CREATE TABLE IF NOT EXISTS route_focus (
		focus_id INTEGER PRIMARY KEY CHECK (focus_id = 1),
		from_label TEXT NOT NULL,
		from_lat REAL,
		from_lng REAL,
		to_label TEXT NOT NULL,
		to_lat REAL NOT NULL,
		to_lng REAL NOT NULL
	);
	`

	statements := []string{
		createPlacesQuery,
		createRouteCacheQuery,
		createTripPlacesQuery,
		createRouteFocusQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type PlaceSeed struct {
	PlaceID  string   `json:"place_id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Lat      *float64 `json:"lat"`
	Lng      *float64 `json:"lng"`
}

// Populate the catalog with place data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed places: read %q: %w", jsonPath, err)
	}

	var data []PlaceSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed places: parse json: %w", err)
	}

	rows := make([]PlaceSeed, 0, len(data))
	for i, item := range data {
		id := strings.TrimSpace(item.PlaceID)
		if id == "" {
			return fmt.Errorf("seed places: item at index %d: place_id cannot be empty", i+1)
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return fmt.Errorf("seed places: item at index %d: name cannot be empty", i+1)
		}

		item.PlaceID = id
		item.Name = name
		rows = append(rows, item)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed places: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO places (
		place_id,
		name,
		category,
		lat,
		lng
	)
	VALUES (?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed places: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range rows {
		if _, err := stmt.Exec(p.PlaceID, p.Name, p.Category, p.Lat, p.Lng); err != nil {
			return fmt.Errorf("seed places: insert place_id=%s: %w", p.PlaceID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed places: commit tx: %w", err)
	}

	return nil
}
