package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/atlasworks/travelatlas/internal/core/domain"
	"github.com/atlasworks/travelatlas/internal/core/ports"
)

// POIRepo implements ports.POIRepository with pgx.
type POIRepo struct {
	db *DB
}

// NewPOIRepo creates a new POIRepo.
func NewPOIRepo(db *DB) *POIRepo {
	return &POIRepo{db: db}
}

// Upsert inserts or updates a single POI.
func (r *POIRepo) Upsert(ctx context.Context, p *domain.POI) error {
	_, err := r.db.Pool.Exec(ctx, `
		INSERT INTO pois (id, country_code, name, category, description, location, tags)
		VALUES ($1, $2, $3, $4, $5, ST_SetSRID(ST_MakePoint($6, $7), 4326)::geography, $8)
		ON CONFLICT (id) DO UPDATE
		SET country_code = EXCLUDED.country_code, name = EXCLUDED.name,
		    category = EXCLUDED.category, description = EXCLUDED.description,
		    location = EXCLUDED.location, tags = EXCLUDED.tags
	`, p.ID, p.CountryCode, p.Name, p.Category, p.Description,
		p.Location.Lon, p.Location.Lat, p.Tags)
	return err
}

// UpsertBatch inserts many POIs using pgx.Batch.
func (r *POIRepo) UpsertBatch(ctx context.Context, pois []domain.POI) error {
	batch := &pgx.Batch{}
	for _, p := range pois {
		batch.Queue(`
			INSERT INTO pois (id, country_code, name, category, description, location, tags)
			VALUES ($1, $2, $3, $4, $5, ST_SetSRID(ST_MakePoint($6, $7), 4326)::geography, $8)
			ON CONFLICT (id) DO UPDATE
			SET name = EXCLUDED.name, category = EXCLUDED.category,
			    description = EXCLUDED.description, location = EXCLUDED.location,
			    tags = EXCLUDED.tags
		`, p.ID, p.CountryCode, p.Name, p.Category, p.Description,
			p.Location.Lon, p.Location.Lat, p.Tags)
	}
	br := r.db.Pool.SendBatch(ctx, batch)
	defer br.Close()
	for range pois {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("batch exec: %w", err)
		}
	}
	return nil
}

// GetByID returns a POI by UUID.
func (r *POIRepo) GetByID(ctx context.Context, id string) (*domain.POI, error) {
	var p domain.POI
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, country_code, name, category, COALESCE(description, ''),
		       ST_Y(location::geometry) as lat,
		       ST_X(location::geometry) as lon,
		       COALESCE(tags, '{}'), created_at
		FROM pois WHERE id = $1
	`, id).Scan(
		&p.ID, &p.CountryCode, &p.Name, &p.Category, &p.Description,
		&p.Location.Lat, &p.Location.Lon, &p.Tags, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: poi %s", ports.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByCountry returns all POIs for a country, ordered by name.
func (r *POIRepo) ListByCountry(ctx context.Context, countryCode string) ([]domain.POI, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, country_code, name, category, COALESCE(description, ''),
		       ST_Y(location::geometry) as lat,
		       ST_X(location::geometry) as lon,
		       COALESCE(tags, '{}'), created_at
		FROM pois WHERE country_code = $1
		ORDER BY name
	`, countryCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPOIs(rows, false)
}

// FindNearby returns POIs within radiusMeters using PostGIS ST_DWithin.
func (r *POIRepo) FindNearby(ctx context.Context, lat, lon, radiusMeters float64, limit int) ([]domain.POI, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, country_code, name, category, COALESCE(description, ''),
		       ST_Y(location::geometry) as lat,
		       ST_X(location::geometry) as lon,
		       COALESCE(tags, '{}'), created_at,
		       ST_Distance(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) as distance
		FROM pois
		WHERE ST_DWithin(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3)
		ORDER BY distance
		LIMIT $4
	`, lon, lat, radiusMeters, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPOIs(rows, true)
}

// Search performs fuzzy + full-text search on POI names and descriptions.
func (r *POIRepo) Search(ctx context.Context, query string, limit int) ([]domain.POI, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, country_code, name, category, COALESCE(description, ''),
		       ST_Y(location::geometry) as lat,
		       ST_X(location::geometry) as lon,
		       COALESCE(tags, '{}'), created_at
		FROM pois
		WHERE search_vector @@ plainto_tsquery('english', $1)
		   OR name %> $1
		ORDER BY similarity(name, $1) DESC
		LIMIT $2
	`, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPOIs(rows, false)
}

func scanPOIs(rows pgx.Rows, withDistance bool) ([]domain.POI, error) {
	var pois []domain.POI
	for rows.Next() {
		var p domain.POI
		dest := []any{
			&p.ID, &p.CountryCode, &p.Name, &p.Category, &p.Description,
			&p.Location.Lat, &p.Location.Lon, &p.Tags, &p.CreatedAt,
		}
		var dist float64
		if withDistance {
			dest = append(dest, &dist)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		if withDistance {
			d := dist
			p.Distance = &d
		}
		pois = append(pois, p)
	}
	return pois, rows.Err()
}
