package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atlasworks/travelatlas/internal/core/domain"
)

// ListCountriesHandler returns the embedded country dataset.
func ListCountriesHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		countries := deps.Countries.All()

		// Apply offset/limit pagination on the full list
		offset := c.QueryInt("offset", 0)
		limit := c.QueryInt("limit", 100)
		if offset < 0 {
			offset = 0
		}
		if limit <= 0 || limit > 200 {
			limit = 100
		}

		total := len(countries)
		if offset >= total {
			countries = nil
		} else {
			end := offset + limit
			if end > total {
				end = total
			}
			countries = countries[offset:end]
		}

		pg := Pagination{Offset: offset, Limit: limit, Total: total}
		SetLinkHeaders(c, pg)
		c.Set("Cache-Control", "public, max-age=86400")
		return c.JSON(PaginatedResponse{Data: countries, Pagination: pg})
	}
}

// GetCountryHandler returns one country by ISO code.
func GetCountryHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := c.Params("code")
		if code == "" {
			return errBadRequest(c, "country code is required")
		}
		country := deps.Countries.ByCode(code)
		if country == nil {
			return errNotFound(c, "country not found")
		}
		c.Set("Cache-Control", "public, max-age=86400")
		return c.JSON(country)
	}
}

// ResolveCountryHandler maps free text to a country.
func ResolveCountryHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")
		if query == "" {
			return errBadRequest(c, "q query parameter is required")
		}
		if len(query) > 200 {
			return errBadRequest(c, "query too long (max 200 characters)")
		}

		country := deps.Countries.Resolve(query)
		if country == nil {
			return errNotFound(c, "no country matches the query")
		}
		return c.JSON(country)
	}
}

// ListPOIsHandler returns catalog entries for a country.
func ListPOIsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		countryCode := c.Query("country")
		if countryCode == "" {
			return errBadRequest(c, "country query parameter is required")
		}

		pois, err := deps.POIs.ListByCountry(c.Context(), countryCode)
		if err != nil {
			return errService(c, err)
		}

		c.Set("Cache-Control", "public, max-age=600")
		return c.JSON(pois)
	}
}

// NearbyPOIsHandler returns catalog entries within a radius of a point.
func NearbyPOIsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lat, lon, ok := requirePoint(c)
		if !ok {
			return errBadRequest(c, "lat and lon are required and must be valid coordinates")
		}
		radius := c.QueryFloat("radius", 1000)
		limit := c.QueryInt("limit", 20)

		if radius <= 0 || radius > 10000 {
			return errBadRequest(c, "radius must be between 1 and 10000 meters")
		}

		pois, err := deps.POIs.FindNearby(c.Context(), lat, lon, radius, limit)
		if err != nil {
			return errService(c, err)
		}

		c.Set("Cache-Control", "public, max-age=300")
		return c.JSON(pois)
	}
}

// SearchPOIsHandler performs fuzzy search on catalog names.
func SearchPOIsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")
		if query == "" {
			return errBadRequest(c, "q query parameter is required")
		}
		if len(query) > 200 {
			return errBadRequest(c, "query too long (max 200 characters)")
		}
		limit := c.QueryInt("limit", 20)

		pois, err := deps.POIs.Search(c.Context(), query, limit)
		if err != nil {
			return errService(c, err)
		}

		return c.JSON(pois)
	}
}

// GetPOIHandler returns a single catalog entry by ID.
func GetPOIHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if id == "" {
			return errBadRequest(c, "poi id is required")
		}
		poi, err := deps.POIs.GetByID(c.Context(), id)
		if err != nil {
			return errService(c, err)
		}
		return c.JSON(poi)
	}
}

// itineraryRequest is the body for optimize and create calls.
type itineraryRequest struct {
	Name       string                 `json:"name"`
	Stops      []domain.ItineraryStop `json:"stops"`
	StartIndex int                    `json:"start_index"`
}

// OptimizeItineraryHandler reorders stops without persisting anything.
func OptimizeItineraryHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req itineraryRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid JSON body")
		}

		it, err := deps.Itineraries.Optimize(c.Context(), req.Name, req.Stops, req.StartIndex)
		if err != nil {
			return errBadRequest(c, err.Error())
		}
		return c.JSON(it)
	}
}

// CreateItineraryHandler optimizes and persists an itinerary.
func CreateItineraryHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req itineraryRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid JSON body")
		}

		it, err := deps.Itineraries.Create(c.Context(), req.Name, req.Stops, req.StartIndex)
		if err != nil {
			return errService(c, err)
		}
		return c.Status(201).JSON(it)
	}
}

// GetItineraryHandler returns a persisted itinerary with its stops.
func GetItineraryHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if id == "" {
			return errBadRequest(c, "itinerary id is required")
		}
		it, err := deps.Itineraries.GetByID(c.Context(), id)
		if err != nil {
			return errService(c, err)
		}
		return c.JSON(it)
	}
}

// ListItinerariesHandler returns persisted itineraries, newest first.
func ListItinerariesHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		offset := c.QueryInt("offset", 0)
		limit := c.QueryInt("limit", 20)

		its, total, err := deps.Itineraries.List(c.Context(), limit, offset)
		if err != nil {
			return errService(c, err)
		}

		pg := Pagination{Offset: offset, Limit: limit, Total: total}
		SetLinkHeaders(c, pg)
		return c.JSON(PaginatedResponse{Data: its, Pagination: pg})
	}
}
