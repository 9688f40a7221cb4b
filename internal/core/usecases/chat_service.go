package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atlasworks/travelatlas/internal/core/domain"
	"github.com/atlasworks/travelatlas/internal/core/ports"
	"github.com/atlasworks/travelatlas/internal/pkg/countries"
	"github.com/atlasworks/travelatlas/internal/pkg/metrics"
)

// DefaultChatProvider is used when a request does not name one.
const DefaultChatProvider = "ollama"

const intentMarker = "INTENTS:"

const systemPrompt = `You are a travel assistant for an interactive globe.
Answer travel questions concisely. When your answer concerns one specific
country, or the user should see the weather, places, or itinerary panel,
append one final line of the form:
INTENTS: [{"kind":"focus_country","country_name":"France"},{"kind":"open_panel","panel":"weather"}]
Valid kinds are focus_country (with country_name) and open_panel (with panel
one of weather, places, itinerary). Emit the line only when an intent applies.`

// ChatService runs assistant turns and derives UI intents from the replies.
type ChatService struct {
	providers map[string]ports.ChatProvider
	publisher ports.EventPublisher
}

// NewChatService creates a ChatService over the given providers.
func NewChatService(providers []ports.ChatProvider, publisher ports.EventPublisher) *ChatService {
	registry := make(map[string]ports.ChatProvider, len(providers))
	for _, p := range providers {
		registry[p.Name()] = p
	}
	return &ChatService{providers: registry, publisher: publisher}
}

// Chat sends one user message through the named provider and returns the
// reply plus the intents derived from it. Intents are also published to the
// broker under the session subject so WebSocket clients can react.
func (s *ChatService) Chat(ctx context.Context, provider, sessionID, message string) (*domain.ChatExchange, error) {
	if provider == "" {
		provider = DefaultChatProvider
	}
	p, ok := s.providers[provider]
	if !ok {
		return nil, &UnsupportedProviderError{Provider: provider}
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: chat message must not be empty", ErrInvalidInput)
	}

	reply, err := p.Chat(ctx, []domain.ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: message},
	})
	if err != nil {
		return nil, err
	}

	reply, intents := extractIntents(reply)
	if len(intents) == 0 {
		// Small models skip the marker line often enough that a fuzzy
		// pass over the conversation text is worth it.
		if c := resolveMentionedCountry(message, reply); c != nil {
			intents = append(intents, focusIntent(c))
		}
	}

	if s.publisher != nil && len(intents) > 0 {
		if err := s.publisher.PublishIntents(ctx, sessionID, intents); err != nil {
			slog.Warn("failed to publish chat intents", "session_id", sessionID, "error", err)
		}
	}
	for _, in := range intents {
		metrics.IntentsPublished.WithLabelValues(in.Kind).Inc()
	}

	return &domain.ChatExchange{
		SessionID: sessionID,
		Provider:  provider,
		Reply:     reply,
		Intents:   intents,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// extractIntents splits the intent line off a reply. The parse is lenient:
// models wrap the marker in prose or fences, so we take everything after the
// last marker occurrence, trim to the bracketed array, and drop anything
// that fails to decode.
func extractIntents(reply string) (string, []domain.Intent) {
	idx := strings.LastIndex(reply, intentMarker)
	if idx < 0 {
		return strings.TrimSpace(reply), nil
	}

	text := strings.TrimSpace(reply[:idx])
	raw := reply[idx+len(intentMarker):]

	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end < start {
		return text, nil
	}

	var parsed []domain.Intent
	if err := json.Unmarshal([]byte(raw[start:end+1]), &parsed); err != nil {
		return text, nil
	}

	intents := make([]domain.Intent, 0, len(parsed))
	for _, in := range parsed {
		switch in.Kind {
		case domain.IntentFocusCountry:
			c := countries.Resolve(in.CountryName)
			if c == nil {
				if byCode, ok := countries.ByCode(in.CountryCode); ok {
					c = byCode
				}
			}
			if c == nil {
				continue
			}
			intents = append(intents, focusIntent(c))
		case domain.IntentOpenPanel:
			switch in.Panel {
			case domain.PanelWeather, domain.PanelPlaces, domain.PanelItinerary:
				intents = append(intents, domain.Intent{Kind: domain.IntentOpenPanel, Panel: in.Panel})
			}
		}
	}
	return text, intents
}

// resolveMentionedCountry scans the user message, then the reply, for a
// country reference. The message wins: it is the user's actual interest.
func resolveMentionedCountry(message, reply string) *domain.Country {
	for _, text := range []string{message, reply} {
		if c := countries.Resolve(text); c != nil {
			return c
		}
	}
	return nil
}

func focusIntent(c *domain.Country) domain.Intent {
	centroid := c.Centroid
	return domain.Intent{
		Kind:        domain.IntentFocusCountry,
		CountryCode: c.Code,
		CountryName: c.Name,
		Centroid:    &centroid,
		Zoom:        c.Zoom,
	}
}
