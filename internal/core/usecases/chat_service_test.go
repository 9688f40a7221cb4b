package usecases_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/atlasworks/travelatlas/internal/core/domain"
	"github.com/atlasworks/travelatlas/internal/core/ports"
	"github.com/atlasworks/travelatlas/internal/core/usecases"
)

// --- Mock ChatProvider ---

type mockChatProvider struct {
	name   string
	chatFn func(ctx context.Context, messages []domain.ChatMessage) (string, error)
}

func (m *mockChatProvider) Name() string { return m.name }

func (m *mockChatProvider) Chat(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	if m.chatFn != nil {
		return m.chatFn(ctx, messages)
	}
	return "", nil
}

// --- Mock EventPublisher ---

type mockPublisher struct {
	intentsFn   func(ctx context.Context, sessionID string, intents []domain.Intent) error
	itineraryFn func(ctx context.Context, it *domain.Itinerary) error
}

func (m *mockPublisher) PublishIntents(ctx context.Context, sessionID string, intents []domain.Intent) error {
	if m.intentsFn != nil {
		return m.intentsFn(ctx, sessionID, intents)
	}
	return nil
}

func (m *mockPublisher) PublishItinerarySaved(ctx context.Context, it *domain.Itinerary) error {
	if m.itineraryFn != nil {
		return m.itineraryFn(ctx, it)
	}
	return nil
}

// --- Tests ---

func TestChatService_ParsesIntentLine(t *testing.T) {
	provider := &mockChatProvider{
		name: "ollama",
		chatFn: func(ctx context.Context, messages []domain.ChatMessage) (string, error) {
			return "Paris in spring is lovely.\nINTENTS: [{\"kind\":\"focus_country\",\"country_name\":\"France\"},{\"kind\":\"open_panel\",\"panel\":\"weather\"}]", nil
		},
	}

	svc := usecases.NewChatService([]ports.ChatProvider{provider}, nil)

	ex, err := svc.Chat(context.Background(), "", "sess-1", "What is Paris like in spring?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(ex.Reply, "INTENTS") {
		t.Errorf("intent line should be stripped from reply, got %q", ex.Reply)
	}
	if len(ex.Intents) != 2 {
		t.Fatalf("expected 2 intents, got %d", len(ex.Intents))
	}
	focus := ex.Intents[0]
	if focus.Kind != domain.IntentFocusCountry || focus.CountryCode != "fr" {
		t.Errorf("expected focus_country fr, got %+v", focus)
	}
	if focus.Centroid == nil || focus.Zoom == 0 {
		t.Error("focus intent should carry centroid and zoom from the dataset")
	}
	if ex.Intents[1].Panel != domain.PanelWeather {
		t.Errorf("expected weather panel, got %s", ex.Intents[1].Panel)
	}
}

func TestChatService_FallbackCountryResolution(t *testing.T) {
	provider := &mockChatProvider{
		name: "ollama",
		chatFn: func(ctx context.Context, messages []domain.ChatMessage) (string, error) {
			return "Sushi, temples and bullet trains await you.", nil
		},
	}

	svc := usecases.NewChatService([]ports.ChatProvider{provider}, nil)

	ex, err := svc.Chat(context.Background(), "ollama", "sess-2", "Tell me about travelling in Japan")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ex.Intents) != 1 {
		t.Fatalf("expected fallback intent, got %d intents", len(ex.Intents))
	}
	if ex.Intents[0].CountryCode != "jp" {
		t.Errorf("expected jp, got %s", ex.Intents[0].CountryCode)
	}
}

func TestChatService_InvalidIntentPayloadDropped(t *testing.T) {
	provider := &mockChatProvider{
		name: "ollama",
		chatFn: func(ctx context.Context, messages []domain.ChatMessage) (string, error) {
			return "Hmm.\nINTENTS: [{\"kind\":\"open_panel\",\"panel\":\"teleporter\"},{\"kind\":\"focus_country\",\"country_name\":\"Atlantis\"}]", nil
		},
	}

	svc := usecases.NewChatService([]ports.ChatProvider{provider}, nil)

	ex, err := svc.Chat(context.Background(), "", "sess-3", "Take me somewhere impossible, not a real place at all")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ex.Intents) != 0 {
		t.Errorf("expected unknown panels and countries to be dropped, got %+v", ex.Intents)
	}
}

func TestChatService_PublishesIntents(t *testing.T) {
	provider := &mockChatProvider{
		name: "ollama",
		chatFn: func(ctx context.Context, messages []domain.ChatMessage) (string, error) {
			return "Italy it is.\nINTENTS: [{\"kind\":\"focus_country\",\"country_name\":\"Italy\"}]", nil
		},
	}

	var gotSession string
	var gotIntents []domain.Intent
	pub := &mockPublisher{
		intentsFn: func(ctx context.Context, sessionID string, intents []domain.Intent) error {
			gotSession = sessionID
			gotIntents = intents
			return nil
		},
	}

	svc := usecases.NewChatService([]ports.ChatProvider{provider}, pub)

	_, err := svc.Chat(context.Background(), "", "sess-4", "Plan me an Italian holiday")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotSession != "sess-4" {
		t.Errorf("expected session sess-4, got %s", gotSession)
	}
	if len(gotIntents) != 1 || gotIntents[0].CountryCode != "it" {
		t.Errorf("expected published it intent, got %+v", gotIntents)
	}
}

func TestChatService_UnsupportedProvider(t *testing.T) {
	svc := usecases.NewChatService([]ports.ChatProvider{&mockChatProvider{name: "ollama"}}, nil)

	_, err := svc.Chat(context.Background(), "gpt4", "sess-5", "hello")
	var unsupported *usecases.UnsupportedProviderError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedProviderError, got %v", err)
	}
}

func TestChatService_EmptyMessage(t *testing.T) {
	svc := usecases.NewChatService([]ports.ChatProvider{&mockChatProvider{name: "ollama"}}, nil)

	_, err := svc.Chat(context.Background(), "", "sess-6", "   ")
	if err == nil {
		t.Error("expected error for empty message")
	}
}

func TestChatService_SystemPromptPrepended(t *testing.T) {
	var got []domain.ChatMessage
	provider := &mockChatProvider{
		name: "ollama",
		chatFn: func(ctx context.Context, messages []domain.ChatMessage) (string, error) {
			got = messages
			return "ok", nil
		},
	}

	svc := usecases.NewChatService([]ports.ChatProvider{provider}, nil)
	_, _ = svc.Chat(context.Background(), "", "sess-7", "hello there, anything but geography")

	if len(got) != 2 || got[0].Role != "system" || got[1].Role != "user" {
		t.Fatalf("expected system then user message, got %+v", got)
	}
	if !strings.Contains(got[0].Content, "INTENTS") {
		t.Error("system prompt should describe the intent line")
	}
}
