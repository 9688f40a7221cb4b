package usecases

import (
	"github.com/atlasworks/travelatlas/internal/core/domain"
	"github.com/atlasworks/travelatlas/internal/pkg/countries"
	"github.com/atlasworks/travelatlas/internal/pkg/metrics"
)

// CountryService exposes the embedded atlas dataset and fuzzy resolution.
// The dataset lives in memory, so there is nothing to cache or fetch.
type CountryService struct{}

// NewCountryService creates a new CountryService.
func NewCountryService() *CountryService {
	return &CountryService{}
}

// All returns every country in the dataset.
func (s *CountryService) All() []domain.Country {
	return countries.All()
}

// ByCode returns the country for an ISO 3166-1 alpha-2 code, or nil.
func (s *CountryService) ByCode(code string) *domain.Country {
	c, ok := countries.ByCode(code)
	if !ok {
		return nil
	}
	return c
}

// Resolve maps free text to a country, or nil when nothing matches
// confidently enough.
func (s *CountryService) Resolve(query string) *domain.Country {
	c := countries.Resolve(query)
	if c != nil {
		metrics.CountryResolutions.WithLabelValues("hit").Inc()
	} else {
		metrics.CountryResolutions.WithLabelValues("miss").Inc()
	}
	return c
}
