package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the Postgres database schema. Used by the dbtool path for
// deployments backed by a shared database instead of the local SQLite file.
func InitPgSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init pg schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init pg schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPlacesQuery := `
	CREATE TABLE IF NOT EXISTS places (
		place_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		lat DOUBLE PRECISION,
		lng DOUBLE PRECISION
	);
	`

	createRouteCacheQuery := `
	CREATE TABLE IF NOT EXISTS route_cache (
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        distance_meters DOUBLE PRECISION NOT NULL,
        duration_seconds DOUBLE PRECISION NOT NULL,
        PRIMARY KEY (origin, destination)
    );
	`

	createTripPlacesQuery := `
	CREATE TABLE IF NOT EXISTS trip_places (
		place_id TEXT PRIMARY KEY
	);
	`

	statements := []string{
		createPlacesQuery,
		createRouteCacheQuery,
		createTripPlacesQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init pg schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init pg schema: commit tx: %w", err)
	}

	return nil
}

// Populate the Postgres catalog with place data from a JSON file.
func SeedPgFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed pg places: read %q: %w", jsonPath, err)
	}

	var data []PlaceSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed pg places: parse json: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed pg places: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT INTO places (place_id, name, category, lat, lng)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (place_id) DO UPDATE
	SET name = EXCLUDED.name,
		category = EXCLUDED.category,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed pg places: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range data {
		id := strings.TrimSpace(p.PlaceID)
		if id == "" {
			return fmt.Errorf("seed pg places: item at index %d: place_id cannot be empty", i+1)
		}

		if _, err := stmt.Exec(id, strings.TrimSpace(p.Name), p.Category, p.Lat, p.Lng); err != nil {
			return fmt.Errorf("seed pg places: insert place_id=%s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed pg places: commit tx: %w", err)
	}

	return nil
}
