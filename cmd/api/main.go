package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/atlasworks/travelatlas/internal/adapters/http"
	natsadapter "github.com/atlasworks/travelatlas/internal/adapters/nats"
	"github.com/atlasworks/travelatlas/internal/adapters/postgres"
	"github.com/atlasworks/travelatlas/internal/adapters/providers"
	"github.com/atlasworks/travelatlas/internal/adapters/valkey"
	"github.com/atlasworks/travelatlas/internal/core/ports"
	"github.com/atlasworks/travelatlas/internal/core/usecases"
	"github.com/atlasworks/travelatlas/internal/pkg/config"
	"github.com/atlasworks/travelatlas/internal/pkg/logging"
	"github.com/atlasworks/travelatlas/internal/pkg/metrics"
	"github.com/atlasworks/travelatlas/internal/pkg/telemetry"
)

func main() {
	cfg, err := config.Load("travelatlas-api")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Structured logging
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logging.Setup("travelatlas-api", logLevel, "json")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Telemetry
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.OTLPAddr)
		if err != nil {
			slog.Warn("telemetry init failed", "error", err)
		} else {
			defer shutdown()
		}
	}

	// Database
	db, err := postgres.New(ctx, cfg.Database.DSN(), 50)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Keep pool gauges current
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				metrics.UpdateDBPoolMetrics(db.Pool.Stat())
			case <-ctx.Done():
				return
			}
		}
	}()

	// Cache. The service runs without one, so a typed-nil pointer must not
	// leak into the CacheService interface.
	var cacheSvc ports.CacheService
	cache, err := valkey.New(cfg.Valkey.Addr)
	if err != nil {
		slog.Warn("valkey unavailable, running without cache", "error", err)
		cache = nil
	} else {
		cacheSvc = cache
		defer cache.Close()
	}

	// NATS
	var events ports.EventPublisher
	nc, err := natsadapter.NewPublisher(cfg.NATS.URL)
	if err != nil {
		slog.Warn("nats unavailable, events disabled", "error", err)
	} else {
		events = nc
		defer nc.Close()
	}

	// Raw NATS connection for WebSocket relay
	natsConn, err := natsadapter.RawConn(cfg.NATS.URL)
	if err != nil {
		slog.Warn("nats ws conn unavailable", "error", err)
	}

	// Upstream provider clients
	p := cfg.Providers
	openweather := providers.NewOpenWeather(p.OpenWeather.BaseURL, p.OpenWeather.APIKey,
		time.Duration(p.OpenWeather.TimeoutSeconds)*time.Second)
	openmeteo := providers.NewOpenMeteo(p.OpenMeteo.BaseURL,
		time.Duration(p.OpenMeteo.TimeoutSeconds)*time.Second)
	photon := providers.NewPhoton(p.Photon.BaseURL,
		time.Duration(p.Photon.TimeoutSeconds)*time.Second)
	opentripmap := providers.NewOpenTripMap(p.OpenTripMap.BaseURL, p.OpenTripMap.APIKey, p.OpenTripMap.Lang,
		time.Duration(p.OpenTripMap.TimeoutSeconds)*time.Second)
	ollama := providers.NewOllama(p.Ollama.BaseURL, p.Ollama.Model,
		time.Duration(p.Ollama.TimeoutSeconds)*time.Second)

	// Repos
	poiRepo := postgres.NewPOIRepo(db)
	itineraryRepo := postgres.NewItineraryRepo(db)

	// Use cases
	countrySvc := usecases.NewCountryService()
	poiSvc := usecases.NewPOIService(poiRepo, cacheSvc)
	weatherSvc := usecases.NewWeatherService([]ports.WeatherProvider{openweather, openmeteo}, cacheSvc)
	geocodeSvc := usecases.NewGeocodeService(photon, cacheSvc)
	placesSvc := usecases.NewPlacesService(opentripmap, cacheSvc)
	chatSvc := usecases.NewChatService([]ports.ChatProvider{ollama}, events)
	itinerarySvc := usecases.NewItineraryService(itineraryRepo, events)

	deps := &http.Dependencies{
		Countries:   countrySvc,
		POIs:        poiSvc,
		Weather:     weatherSvc,
		Geocode:     geocodeSvc,
		Places:      placesSvc,
		Chat:        chatSvc,
		Itineraries: itinerarySvc,
		NATS:        natsConn,
		DB:          db,
		Cache:       cache,
	}

	// Fiber
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    1024 * 1024, // 1 MB max request body
		AppName:      "Travel Atlas API",
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000, http://localhost:5173",
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
		MaxAge:           3600,
	}))

	http.SetupRoutes(app, deps)

	// Graceful shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("API server starting", "addr", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	slog.Info("shutdown signal received, draining connections...", "signal", sig.String())

	// Give in-flight requests up to 10s to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	slog.Info("server stopped")
}
