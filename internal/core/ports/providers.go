package ports

import (
	"context"

	"github.com/atlasworks/travelatlas/internal/core/domain"
)

// WeatherProvider fetches current conditions from an upstream API.
type WeatherProvider interface {
	Name() string
	Current(ctx context.Context, lat, lon float64) (*domain.Weather, error)
}

// GeocodeProvider resolves text to coordinates and back.
type GeocodeProvider interface {
	Name() string
	Search(ctx context.Context, query string, limit int) ([]domain.GeocodeResult, error)
	Reverse(ctx context.Context, lat, lon float64) ([]domain.GeocodeResult, error)
}

// PlacesProvider lists points of interest around a coordinate.
type PlacesProvider interface {
	Name() string
	Radius(ctx context.Context, lat, lon, radiusMeters float64, kinds string, limit int) ([]domain.Place, error)
	Detail(ctx context.Context, xid string) (*domain.PlaceDetail, error)
}

// ChatProvider runs one assistant conversation turn.
type ChatProvider interface {
	Name() string
	Chat(ctx context.Context, messages []domain.ChatMessage) (string, error)
}
