package http

import (
	"github.com/nats-io/nats.go"

	"github.com/atlasworks/travelatlas/internal/adapters/postgres"
	"github.com/atlasworks/travelatlas/internal/adapters/valkey"
	"github.com/atlasworks/travelatlas/internal/core/usecases"
)

// Dependencies holds all services needed by HTTP handlers.
type Dependencies struct {
	Countries   *usecases.CountryService
	POIs        *usecases.POIService
	Weather     *usecases.WeatherService
	Geocode     *usecases.GeocodeService
	Places      *usecases.PlacesService
	Chat        *usecases.ChatService
	Itineraries *usecases.ItineraryService
	NATS        *nats.Conn
	DB          *postgres.DB
	Cache       *valkey.Cache
}
