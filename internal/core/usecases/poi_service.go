package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/atlasworks/travelatlas/internal/core/domain"
	"github.com/atlasworks/travelatlas/internal/core/ports"
	"github.com/atlasworks/travelatlas/internal/pkg/metrics"
)

// POIService handles the curated point-of-interest catalog.
type POIService struct {
	pois  ports.POIRepository
	cache ports.CacheService
}

// NewPOIService creates a new POIService.
func NewPOIService(pois ports.POIRepository, cache ports.CacheService) *POIService {
	return &POIService{pois: pois, cache: cache}
}

// ListByCountry returns the catalog entries for one country.
func (s *POIService) ListByCountry(ctx context.Context, countryCode string) ([]domain.POI, error) {
	countryCode = strings.ToLower(strings.TrimSpace(countryCode))
	if len(countryCode) != 2 {
		return nil, fmt.Errorf("%w: country code must be two letters", ErrInvalidInput)
	}

	cacheKey := "pois:country:" + countryCode
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var pois []domain.POI
			if err := json.Unmarshal(data, &pois); err == nil {
				metrics.CacheHits.WithLabelValues("pois").Inc()
				return pois, nil
			}
		}
		metrics.CacheMisses.WithLabelValues("pois").Inc()
	}

	pois, err := s.pois.ListByCountry(ctx, countryCode)
	if err != nil {
		return nil, err
	}

	// The catalog changes only on reseeding.
	if s.cache != nil {
		if data, err := json.Marshal(pois); err == nil {
			_ = s.cache.Set(ctx, cacheKey, data, 600)
		}
	}

	return pois, nil
}

// FindNearby returns catalog entries within radiusMeters of the given point.
func (s *POIService) FindNearby(ctx context.Context, lat, lon, radiusMeters float64, limit int) ([]domain.POI, error) {
	if radiusMeters <= 0 {
		radiusMeters = 1000
	}
	if radiusMeters > 10000 {
		radiusMeters = 10000
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	cacheKey := fmt.Sprintf("pois:nearby:%.4f:%.4f:%.0f:%d", lat, lon, radiusMeters, limit)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var pois []domain.POI
			if err := json.Unmarshal(data, &pois); err == nil {
				metrics.CacheHits.WithLabelValues("pois").Inc()
				return pois, nil
			}
		}
		metrics.CacheMisses.WithLabelValues("pois").Inc()
	}

	pois, err := s.pois.FindNearby(ctx, lat, lon, radiusMeters, limit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(pois); err == nil {
			_ = s.cache.Set(ctx, cacheKey, data, 300)
		}
	}

	return pois, nil
}

// Search performs fuzzy search over catalog names and descriptions.
func (s *POIService) Search(ctx context.Context, query string, limit int) ([]domain.POI, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query must not be empty", ErrInvalidInput)
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return s.pois.Search(ctx, query, limit)
}

// GetByID returns a single catalog entry.
func (s *POIService) GetByID(ctx context.Context, id string) (*domain.POI, error) {
	return s.pois.GetByID(ctx, id)
}

// Import upserts a batch of catalog entries, invalidating country caches.
func (s *POIService) Import(ctx context.Context, pois []domain.POI) error {
	if len(pois) == 0 {
		return nil
	}
	if err := s.pois.UpsertBatch(ctx, pois); err != nil {
		return err
	}
	if s.cache != nil {
		seen := map[string]bool{}
		for _, p := range pois {
			if !seen[p.CountryCode] {
				seen[p.CountryCode] = true
				_ = s.cache.Delete(ctx, "pois:country:"+p.CountryCode)
			}
		}
	}
	return nil
}
