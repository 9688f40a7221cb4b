package ports

import (
	"context"

	"github.com/atlasworks/travelatlas/internal/core/domain"
)

// EventPublisher publishes domain events to a message broker.
type EventPublisher interface {
	PublishIntents(ctx context.Context, sessionID string, intents []domain.Intent) error
	PublishItinerarySaved(ctx context.Context, it *domain.Itinerary) error
}

// CacheService provides read-through caching.
type CacheService interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttlSeconds int) error
	Delete(ctx context.Context, key string) error
}
