package ports

import (
	"context"
	"errors"

	"github.com/atlasworks/travelatlas/internal/core/domain"
)

// ErrNotFound is returned by repositories when a lookup matches no row.
// Implementations translate their driver's sentinel into it so callers
// can distinguish a miss from a storage failure.
var ErrNotFound = errors.New("not found")

// POIRepository persists the curated POI catalog.
type POIRepository interface {
	Upsert(ctx context.Context, poi *domain.POI) error
	UpsertBatch(ctx context.Context, pois []domain.POI) error
	GetByID(ctx context.Context, id string) (*domain.POI, error)
	ListByCountry(ctx context.Context, countryCode string) ([]domain.POI, error)
	FindNearby(ctx context.Context, lat, lon, radiusMeters float64, limit int) ([]domain.POI, error)
	Search(ctx context.Context, query string, limit int) ([]domain.POI, error)
}

// ItineraryRepository persists optimized itineraries.
type ItineraryRepository interface {
	Create(ctx context.Context, it *domain.Itinerary) error
	GetByID(ctx context.Context, id string) (*domain.Itinerary, error)
	List(ctx context.Context, limit, offset int) ([]domain.Itinerary, int, error)
}
