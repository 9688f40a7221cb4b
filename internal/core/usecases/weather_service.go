package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/atlasworks/travelatlas/internal/core/domain"
	"github.com/atlasworks/travelatlas/internal/core/ports"
	"github.com/atlasworks/travelatlas/internal/pkg/metrics"
)

// DefaultWeatherProvider is used when a request does not name one.
const DefaultWeatherProvider = "openweather"

// WeatherService fans requests out to a registry of weather providers.
type WeatherService struct {
	providers map[string]ports.WeatherProvider
	cache     ports.CacheService
}

// NewWeatherService creates a WeatherService over the given providers.
func NewWeatherService(providers []ports.WeatherProvider, cache ports.CacheService) *WeatherService {
	registry := make(map[string]ports.WeatherProvider, len(providers))
	for _, p := range providers {
		registry[p.Name()] = p
	}
	return &WeatherService{providers: registry, cache: cache}
}

// Providers returns the registered provider names.
func (s *WeatherService) Providers() []string {
	names := make([]string, 0, len(s.providers))
	for name := range s.providers {
		names = append(names, name)
	}
	return names
}

// Current returns current conditions at a point. An empty provider name
// selects the default; an unknown one is rejected before any upstream call.
func (s *WeatherService) Current(ctx context.Context, provider string, lat, lon float64) (*domain.Weather, error) {
	if provider == "" {
		provider = DefaultWeatherProvider
	}
	p, ok := s.providers[provider]
	if !ok {
		return nil, &UnsupportedProviderError{Provider: provider}
	}

	// Weather readings are near-static on a two minute horizon; cache at
	// reduced coordinate precision so nearby queries share an entry.
	cacheKey := fmt.Sprintf("weather:%s:%.2f:%.2f", provider, lat, lon)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var w domain.Weather
			if err := json.Unmarshal(data, &w); err == nil {
				metrics.CacheHits.WithLabelValues("weather").Inc()
				return &w, nil
			}
		}
		metrics.CacheMisses.WithLabelValues("weather").Inc()
	}

	w, err := p.Current(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(w); err == nil {
			_ = s.cache.Set(ctx, cacheKey, data, 120)
		}
	}

	return w, nil
}
