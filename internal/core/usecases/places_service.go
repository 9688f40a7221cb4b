package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/atlasworks/travelatlas/internal/core/domain"
	"github.com/atlasworks/travelatlas/internal/core/ports"
	"github.com/atlasworks/travelatlas/internal/pkg/metrics"
)

// PlacesService lists and describes third-party places around a point.
type PlacesService struct {
	provider ports.PlacesProvider
	cache    ports.CacheService
}

// NewPlacesService creates a new PlacesService.
func NewPlacesService(provider ports.PlacesProvider, cache ports.CacheService) *PlacesService {
	return &PlacesService{provider: provider, cache: cache}
}

// Nearby returns places within radiusMeters of the given point.
func (s *PlacesService) Nearby(ctx context.Context, lat, lon, radiusMeters float64, kinds string, limit int) ([]domain.Place, error) {
	if radiusMeters <= 0 {
		radiusMeters = 1000
	}
	if radiusMeters > 10000 {
		radiusMeters = 10000
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	cacheKey := fmt.Sprintf("places:radius:%.3f:%.3f:%.0f:%s:%d", lat, lon, radiusMeters, kinds, limit)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var places []domain.Place
			if err := json.Unmarshal(data, &places); err == nil {
				metrics.CacheHits.WithLabelValues("places").Inc()
				return places, nil
			}
		}
		metrics.CacheMisses.WithLabelValues("places").Inc()
	}

	places, err := s.provider.Radius(ctx, lat, lon, radiusMeters, kinds, limit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(places); err == nil {
			_ = s.cache.Set(ctx, cacheKey, data, 600)
		}
	}

	return places, nil
}

// Detail returns the expanded description of a single place.
func (s *PlacesService) Detail(ctx context.Context, xid string) (*domain.PlaceDetail, error) {
	if xid == "" {
		return nil, fmt.Errorf("place id must not be empty")
	}

	cacheKey := "places:detail:" + xid
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var detail domain.PlaceDetail
			if err := json.Unmarshal(data, &detail); err == nil {
				metrics.CacheHits.WithLabelValues("places").Inc()
				return &detail, nil
			}
		}
		metrics.CacheMisses.WithLabelValues("places").Inc()
	}

	detail, err := s.provider.Detail(ctx, xid)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(detail); err == nil {
			_ = s.cache.Set(ctx, cacheKey, data, 3600)
		}
	}

	return detail, nil
}
