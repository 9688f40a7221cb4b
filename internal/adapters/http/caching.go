package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CachingMiddleware sets Cache-Control headers on GET responses based on endpoint.
// Adds sensible defaults if not already set by the handler.
func CachingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		if c.Method() != "GET" {
			return err
		}

		// Don't override if already set by the handler
		if existing := c.GetRespHeader(fiber.HeaderCacheControl); existing != "" {
			return err
		}

		path := c.Path()
		var ttl string

		// Default cache times by endpoint pattern
		switch {
		case path == "/v1/health" || path == "/v1/ready":
			ttl = "public, max-age=10" // Very short for system checks

		case strings.HasPrefix(path, "/v1/countries"):
			ttl = "public, max-age=86400" // Country dataset is embedded, changes on deploy

		case path == "/metrics":
			ttl = "no-cache" // Metrics are real-time

		case path == "/graphql":
			ttl = "private, max-age=0" // GraphQL varies wildly

		case strings.HasPrefix(path, "/v1/weather"):
			ttl = "public, max-age=120" // Conditions drift in minutes

		case strings.HasPrefix(path, "/v1/geocode"):
			ttl = "public, max-age=3600" // Place names are stable

		case strings.HasPrefix(path, "/v1/places"):
			ttl = "public, max-age=600"

		case strings.HasPrefix(path, "/v1/pois"):
			ttl = "public, max-age=300"

		case strings.HasPrefix(path, "/v1/itineraries"):
			ttl = "private, max-age=0" // Mutating resource, never shared-cache

		case strings.HasPrefix(path, "/v1/"):
			ttl = "public, max-age=300" // 5 min default for API endpoints
		}

		if ttl != "" {
			c.Set("Cache-Control", ttl)
		}

		return err
	}
}
