package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/timeout"
	"github.com/gofiber/websocket/v2"

	"github.com/atlasworks/travelatlas/internal/pkg/metrics"
)

// SetupRoutes registers all REST, GraphQL, and WebSocket routes.
func SetupRoutes(app *fiber.App, deps *Dependencies) {
	// Prometheus metrics
	app.Use(metrics.Middleware())
	app.Get("/metrics", metrics.Handler())

	// Response compression (gzip)
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // Balance speed vs compression ratio
	}))

	// Request ID
	app.Use(requestid.New())

	// Propagate request ID into slog context
	app.Use(RequestIDLogMiddleware())

	// Access logs (structured HTTP request logging)
	app.Use(AccessLogMiddleware())

	// Rate limiting: 120 requests per minute per IP
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(429).JSON(fiber.Map{
				"error":   "rate limit exceeded",
				"message": "too many requests, please try again later",
			})
		},
		SkipFailedRequests: false,
	}))

	// Security headers + API version
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Set("X-API-Version", "1.0.0")
		return c.Next()
	})

	// ETag for conditional caching
	app.Use(ETagMiddleware())

	// Default Cache-Control headers
	app.Use(CachingMiddleware())

	// Health & readiness (no timeout, fast internal checks)
	app.Get("/v1/health", HealthHandler(deps))
	app.Get("/v1/ready", ReadyHandler(deps))

	// REST API v1
	v1 := app.Group("/v1")
	v1.Get("/countries", timeout.NewWithContext(ListCountriesHandler(deps), 15*time.Second))
	v1.Get("/countries/resolve", timeout.NewWithContext(ResolveCountryHandler(deps), 15*time.Second))
	v1.Get("/countries/:code", timeout.NewWithContext(GetCountryHandler(deps), 15*time.Second))
	v1.Get("/pois", timeout.NewWithContext(ListPOIsHandler(deps), 15*time.Second))
	v1.Get("/pois/nearby", timeout.NewWithContext(NearbyPOIsHandler(deps), 15*time.Second))
	v1.Get("/pois/search", timeout.NewWithContext(SearchPOIsHandler(deps), 15*time.Second))
	v1.Get("/pois/:id", timeout.NewWithContext(GetPOIHandler(deps), 15*time.Second))

	// Upstream proxies get a longer budget; their own client timeouts are
	// tighter, so the route timeout only catches pathological cases.
	v1.Get("/weather", timeout.NewWithContext(WeatherHandler(deps), 30*time.Second))
	v1.Get("/geocode", timeout.NewWithContext(GeocodeHandler(deps), 30*time.Second))
	v1.Get("/geocode/reverse", timeout.NewWithContext(ReverseGeocodeHandler(deps), 30*time.Second))
	v1.Get("/places", timeout.NewWithContext(NearbyPlacesHandler(deps), 30*time.Second))
	v1.Get("/places/:xid", timeout.NewWithContext(GetPlaceHandler(deps), 30*time.Second))

	// Assistant calls can take as long as the model does
	v1.Post("/chat", timeout.NewWithContext(ChatHandler(deps), 120*time.Second))

	v1.Post("/itineraries/optimize", timeout.NewWithContext(OptimizeItineraryHandler(deps), 15*time.Second))
	v1.Post("/itineraries", timeout.NewWithContext(CreateItineraryHandler(deps), 15*time.Second))
	v1.Get("/itineraries", timeout.NewWithContext(ListItinerariesHandler(deps), 15*time.Second))
	v1.Get("/itineraries/:id", timeout.NewWithContext(GetItineraryHandler(deps), 15*time.Second))

	// GraphQL
	app.Post("/graphql", GraphQLHandler(deps))

	// API documentation (Swagger UI)
	SetupDocs(app)

	// WebSocket
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(WebSocketHandler(deps.NATS)))
}
