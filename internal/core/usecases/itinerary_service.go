package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atlasworks/travelatlas/internal/core/domain"
	"github.com/atlasworks/travelatlas/internal/core/ports"
	"github.com/atlasworks/travelatlas/internal/pkg/metrics"
	"github.com/atlasworks/travelatlas/internal/pkg/routing"
)

const maxItineraryStops = 50

// ItineraryService orders stops and optionally persists the result.
type ItineraryService struct {
	itineraries ports.ItineraryRepository
	publisher   ports.EventPublisher
}

// NewItineraryService creates a new ItineraryService.
func NewItineraryService(itineraries ports.ItineraryRepository, publisher ports.EventPublisher) *ItineraryService {
	return &ItineraryService{itineraries: itineraries, publisher: publisher}
}

// Optimize reorders stops by repeatedly visiting the nearest unvisited one,
// starting from startIndex. It does not persist anything.
func (s *ItineraryService) Optimize(ctx context.Context, name string, stops []domain.ItineraryStop, startIndex int) (*domain.Itinerary, error) {
	if err := validateStops(stops); err != nil {
		return nil, err
	}

	order := routing.NearestNeighbor(stops, startIndex)
	metrics.ItinerariesOptimized.Inc()

	return &domain.Itinerary{
		Name:        strings.TrimSpace(name),
		Stops:       order.Stops,
		TotalMeters: order.TotalMeters,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// Create optimizes and persists an itinerary, then announces it on the broker.
func (s *ItineraryService) Create(ctx context.Context, name string, stops []domain.ItineraryStop, startIndex int) (*domain.Itinerary, error) {
	it, err := s.Optimize(ctx, name, stops, startIndex)
	if err != nil {
		return nil, err
	}
	if it.Name == "" {
		it.Name = "Trip " + it.CreatedAt.Format("2006-01-02")
	}
	it.ID = uuid.NewString()

	if err := s.itineraries.Create(ctx, it); err != nil {
		return nil, fmt.Errorf("persisting itinerary: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishItinerarySaved(ctx, it); err != nil {
			slog.Warn("failed to publish itinerary event", "itinerary_id", it.ID, "error", err)
		}
	}

	return it, nil
}

// GetByID returns a persisted itinerary.
func (s *ItineraryService) GetByID(ctx context.Context, id string) (*domain.Itinerary, error) {
	return s.itineraries.GetByID(ctx, id)
}

// List returns persisted itineraries, newest first, with the total count.
func (s *ItineraryService) List(ctx context.Context, limit, offset int) ([]domain.Itinerary, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.itineraries.List(ctx, limit, offset)
}

func validateStops(stops []domain.ItineraryStop) error {
	if len(stops) == 0 {
		return fmt.Errorf("%w: itinerary needs at least one stop", ErrInvalidInput)
	}
	if len(stops) > maxItineraryStops {
		return fmt.Errorf("%w: itinerary exceeds %d stops", ErrInvalidInput, maxItineraryStops)
	}
	for i, st := range stops {
		if strings.TrimSpace(st.Name) == "" {
			return fmt.Errorf("%w: stop %d has no name", ErrInvalidInput, i)
		}
		if !domain.ValidCoordinates(st.Location.Lat, st.Location.Lon) {
			return fmt.Errorf("%w: stop %d has invalid coordinates", ErrInvalidInput, i)
		}
	}
	return nil
}
