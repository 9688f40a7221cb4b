package natsadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/atlasworks/travelatlas/internal/core/domain"
)

// Subject prefixes for the two atlas streams. WebSocket clients subscribe
// per session under the intents prefix.
const (
	SubjectIntentsPrefix  = "atlas.intents."
	SubjectItinerarySaved = "atlas.itinerary.saved"
)

// Publisher implements ports.EventPublisher using NATS JetStream.
type Publisher struct {
	conn *nats.Conn
	js   nats.JetStreamContext
}

// NewPublisher connects to NATS and enables JetStream.
func NewPublisher(url string) (*Publisher, error) {
	conn, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	js, err := conn.JetStream()
	if err != nil {
		return nil, fmt.Errorf("jetstream: %w", err)
	}

	// Ensure streams exist
	streams := []nats.StreamConfig{
		{
			Name:      "ATLAS_INTENTS",
			Subjects:  []string{"atlas.intents.>"},
			Retention: nats.InterestPolicy,
			MaxAge:    1 * time.Hour,
			Storage:   nats.FileStorage,
		},
		{
			Name:      "ATLAS_ITINERARIES",
			Subjects:  []string{"atlas.itinerary.>"},
			Retention: nats.InterestPolicy,
			MaxAge:    24 * time.Hour,
			Storage:   nats.FileStorage,
		},
	}

	for _, cfg := range streams {
		if _, err := js.AddStream(&cfg); err != nil {
			// Stream may already exist, try update
			if _, err := js.UpdateStream(&cfg); err != nil {
				return nil, fmt.Errorf("ensure stream %s: %w", cfg.Name, err)
			}
		}
	}

	return &Publisher{conn: conn, js: js}, nil
}

// PublishIntents publishes the intents of one chat exchange under the
// session subject.
func (p *Publisher) PublishIntents(ctx context.Context, sessionID string, intents []domain.Intent) error {
	data, err := json.Marshal(intents)
	if err != nil {
		return err
	}
	_, err = p.js.Publish(SubjectIntentsPrefix+sessionID, data)
	return err
}

// PublishItinerarySaved announces a newly persisted itinerary.
func (p *Publisher) PublishItinerarySaved(ctx context.Context, it *domain.Itinerary) error {
	data, err := json.Marshal(it)
	if err != nil {
		return err
	}
	_, err = p.js.Publish(SubjectItinerarySaved, data)
	return err
}

// Close drains and closes the connection.
func (p *Publisher) Close() {
	_ = p.conn.Drain()
}

// RawConn creates a plain NATS connection for subscribing (e.g. WebSocket relay).
func RawConn(url string) (*nats.Conn, error) {
	return nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
}
