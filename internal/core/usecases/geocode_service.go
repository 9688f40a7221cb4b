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

// GeocodeService handles forward and reverse geocoding.
type GeocodeService struct {
	provider ports.GeocodeProvider
	cache    ports.CacheService
}

// NewGeocodeService creates a new GeocodeService.
func NewGeocodeService(provider ports.GeocodeProvider, cache ports.CacheService) *GeocodeService {
	return &GeocodeService{provider: provider, cache: cache}
}

// Search resolves free text to candidate locations.
func (s *GeocodeService) Search(ctx context.Context, query string, limit int) ([]domain.GeocodeResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: geocode query must not be empty", ErrInvalidInput)
	}
	if limit <= 0 || limit > 20 {
		limit = 5
	}

	// Place names are stable; cache for an hour.
	cacheKey := fmt.Sprintf("geocode:search:%s:%d", strings.ToLower(query), limit)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var results []domain.GeocodeResult
			if err := json.Unmarshal(data, &results); err == nil {
				metrics.CacheHits.WithLabelValues("geocode").Inc()
				return results, nil
			}
		}
		metrics.CacheMisses.WithLabelValues("geocode").Inc()
	}

	results, err := s.provider.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(results); err == nil {
			_ = s.cache.Set(ctx, cacheKey, data, 3600)
		}
	}

	return results, nil
}

// Reverse resolves a coordinate back to named locations.
func (s *GeocodeService) Reverse(ctx context.Context, lat, lon float64) ([]domain.GeocodeResult, error) {
	cacheKey := fmt.Sprintf("geocode:reverse:%.4f:%.4f", lat, lon)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var results []domain.GeocodeResult
			if err := json.Unmarshal(data, &results); err == nil {
				metrics.CacheHits.WithLabelValues("geocode").Inc()
				return results, nil
			}
		}
		metrics.CacheMisses.WithLabelValues("geocode").Inc()
	}

	results, err := s.provider.Reverse(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(results); err == nil {
			_ = s.cache.Set(ctx, cacheKey, data, 3600)
		}
	}

	return results, nil
}
