package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
)

// SQLite-backed implementation of the CatalogSource port.
type SqlitePlaceRepository struct{ DB *sql.DB }

func NewSqlitePlaceRepository(db *sql.DB) *SqlitePlaceRepository {
	return &SqlitePlaceRepository{DB: db}
}

// Return all catalog places stored in the database.
func (s *SqlitePlaceRepository) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite place repository: DB is nil")
	}

	query := `
	SELECT
		place_id,
		name,
		category,
		lat,
		lng
	FROM places
	ORDER BY place_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list places: query places table: %w", err)
	}
	defer rows.Close()

	places := make([]domain.Place, 0, 64)
	for rows.Next() {
		p, err := scanPlace(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list places: %w", err)
		}
		places = append(places, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list places: row iteration: %w", err)
	}

	return places, nil
}

// GetPlace returns a single place by its catalog ID.
func (s *SqlitePlaceRepository) GetPlace(ctx context.Context, id string) (domain.Place, error) {
	if s.DB == nil {
		return domain.Place{}, errors.New("sqlite place repository: DB is nil")
	}

	query := `
	SELECT
		place_id,
		name,
		category,
		lat,
		lng
	FROM places
	WHERE place_id = ?;
	`
	row := s.DB.QueryRowContext(ctx, query, id)

	p, err := scanPlace(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Place{}, fmt.Errorf("get place: %q not found", id)
	}
	if err != nil {
		return domain.Place{}, fmt.Errorf("get place %q: %w", id, err)
	}

	return p, nil
}

// scanPlace reads one places row. Coordinates are nullable: places without a
// geocoded position stay selectable but never enter leg computation.
func scanPlace(scan func(dest ...any) error) (domain.Place, error) {
	var p domain.Place
	var lat, lng sql.NullFloat64

	if err := scan(&p.ID, &p.Name, &p.Category, &lat, &lng); err != nil {
		return domain.Place{}, err
	}

	if lat.Valid && lng.Valid {
		p.Coords = &domain.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
	}

	return p, nil
}

var _ ports.CatalogSource = (*SqlitePlaceRepository)(nil)
