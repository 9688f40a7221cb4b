package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/atlasworks/travelatlas/internal/core/domain"
	"github.com/atlasworks/travelatlas/internal/core/ports"
)

// ItineraryRepo implements ports.ItineraryRepository with pgx.
type ItineraryRepo struct {
	db *DB
}

// NewItineraryRepo creates a new ItineraryRepo.
func NewItineraryRepo(db *DB) *ItineraryRepo {
	return &ItineraryRepo{db: db}
}

// Create inserts an itinerary and its stops in one transaction.
func (r *ItineraryRepo) Create(ctx context.Context, it *domain.Itinerary) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO itineraries (id, name, total_meters, created_at)
		VALUES ($1, $2, $3, $4)
	`, it.ID, it.Name, it.TotalMeters, it.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert itinerary: %w", err)
	}

	for i, st := range it.Stops {
		_, err = tx.Exec(ctx, `
			INSERT INTO itinerary_stops (itinerary_id, seq, name, location, leg_meters)
			VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326)::geography, $6)
		`, it.ID, i, st.Name, st.Location.Lon, st.Location.Lat, st.LegMeters)
		if err != nil {
			return fmt.Errorf("insert stop %d: %w", i, err)
		}
	}

	return tx.Commit(ctx)
}

// GetByID returns an itinerary with its stops in sequence order.
func (r *ItineraryRepo) GetByID(ctx context.Context, id string) (*domain.Itinerary, error) {
	var it domain.Itinerary
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, name, total_meters, created_at
		FROM itineraries WHERE id = $1
	`, id).Scan(&it.ID, &it.Name, &it.TotalMeters, &it.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: itinerary %s", ports.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Pool.Query(ctx, `
		SELECT name,
		       ST_Y(location::geometry) as lat,
		       ST_X(location::geometry) as lon,
		       leg_meters
		FROM itinerary_stops
		WHERE itinerary_id = $1
		ORDER BY seq
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var st domain.ItineraryStop
		if err := rows.Scan(&st.Name, &st.Location.Lat, &st.Location.Lon, &st.LegMeters); err != nil {
			return nil, err
		}
		it.Stops = append(it.Stops, st)
	}
	return &it, rows.Err()
}

// List returns itineraries newest first along with the total count.
// Stops are not loaded here; listings only need the summary row.
func (r *ItineraryRepo) List(ctx context.Context, limit, offset int) ([]domain.Itinerary, int, error) {
	var total int
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM itineraries`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, name, total_meters, created_at
		FROM itineraries
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var its []domain.Itinerary
	for rows.Next() {
		var it domain.Itinerary
		if err := rows.Scan(&it.ID, &it.Name, &it.TotalMeters, &it.CreatedAt); err != nil {
			return nil, 0, err
		}
		its = append(its, it)
	}
	return its, total, rows.Err()
}
