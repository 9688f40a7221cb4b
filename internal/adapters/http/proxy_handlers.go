package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/atlasworks/travelatlas/internal/core/domain"
)

// requirePoint validates the lat/lon query parameters shared by the point
// lookup endpoints. The raw strings are parsed directly: 0,0 is a valid
// coordinate in the Gulf of Guinea, so a parse default cannot stand in for
// a missing or garbled value.
func requirePoint(c *fiber.Ctx) (float64, float64, bool) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		return 0, 0, false
	}
	if !domain.ValidCoordinates(lat, lon) {
		return 0, 0, false
	}
	return lat, lon, true
}

// WeatherHandler proxies current conditions from the selected provider.
func WeatherHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lat, lon, ok := requirePoint(c)
		if !ok {
			return errBadRequest(c, "lat and lon are required and must be valid coordinates")
		}
		provider := c.Query("provider")

		weather, err := deps.Weather.Current(c.Context(), provider, lat, lon)
		if err != nil {
			return errService(c, err)
		}

		c.Set("Cache-Control", "public, max-age=120")
		return c.JSON(weather)
	}
}

// GeocodeHandler proxies forward geocoding.
func GeocodeHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")
		if query == "" {
			return errBadRequest(c, "q query parameter is required")
		}
		if len(query) > 200 {
			return errBadRequest(c, "query too long (max 200 characters)")
		}
		limit := c.QueryInt("limit", 5)

		results, err := deps.Geocode.Search(c.Context(), query, limit)
		if err != nil {
			return errService(c, err)
		}

		c.Set("Cache-Control", "public, max-age=3600")
		return c.JSON(results)
	}
}

// ReverseGeocodeHandler proxies reverse geocoding.
func ReverseGeocodeHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lat, lon, ok := requirePoint(c)
		if !ok {
			return errBadRequest(c, "lat and lon are required and must be valid coordinates")
		}

		results, err := deps.Geocode.Reverse(c.Context(), lat, lon)
		if err != nil {
			return errService(c, err)
		}

		c.Set("Cache-Control", "public, max-age=3600")
		return c.JSON(results)
	}
}

// NearbyPlacesHandler proxies the places provider radius search.
func NearbyPlacesHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lat, lon, ok := requirePoint(c)
		if !ok {
			return errBadRequest(c, "lat and lon are required and must be valid coordinates")
		}
		radius := c.QueryFloat("radius", 1000)
		if radius <= 0 || radius > 10000 {
			return errBadRequest(c, "radius must be between 1 and 10000 meters")
		}
		kinds := c.Query("kinds")
		limit := c.QueryInt("limit", 20)

		places, err := deps.Places.Nearby(c.Context(), lat, lon, radius, kinds, limit)
		if err != nil {
			return errService(c, err)
		}

		c.Set("Cache-Control", "public, max-age=600")
		return c.JSON(places)
	}
}

// GetPlaceHandler proxies the places provider detail lookup.
func GetPlaceHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		xid := c.Params("xid")
		if xid == "" {
			return errBadRequest(c, "place id is required")
		}

		detail, err := deps.Places.Detail(c.Context(), xid)
		if err != nil {
			return errService(c, err)
		}

		c.Set("Cache-Control", "public, max-age=3600")
		return c.JSON(detail)
	}
}

// chatRequest is the body for assistant calls.
type chatRequest struct {
	SessionID string `json:"session_id"`
	Provider  string `json:"provider,omitempty"`
	Message   string `json:"message"`
}

// ChatHandler runs one assistant turn and returns the reply plus UI intents.
func ChatHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req chatRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid JSON body")
		}
		if strings.TrimSpace(req.Message) == "" {
			return errBadRequest(c, "message is required")
		}
		if req.SessionID == "" {
			req.SessionID = uuid.NewString()
		}

		exchange, err := deps.Chat.Chat(c.Context(), req.Provider, req.SessionID, req.Message)
		if err != nil {
			return errService(c, err)
		}
		return c.JSON(exchange)
	}
}
