package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/atlasworks/travelatlas/internal/core/domain"
	"github.com/atlasworks/travelatlas/internal/pkg/metrics"
)

// Ollama is a client for a local Ollama chat endpoint.
type Ollama struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewOllama creates an Ollama client.
func NewOllama(baseURL, model string, timeout time.Duration) *Ollama {
	return &Ollama{
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (p *Ollama) Name() string { return "ollama" }

type ollamaChatRequest struct {
	Model    string               `json:"model"`
	Messages []domain.ChatMessage `json:"messages"`
	Stream   bool                 `json:"stream"`
}

type ollamaChatResponse struct {
	Message domain.ChatMessage `json:"message"`
	Done    bool               `json:"done"`
}

// Chat sends a non-streaming conversation and returns the assistant reply.
func (p *Ollama) Chat(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	start := time.Now()

	body, err := json.Marshal(ollamaChatRequest{
		Model:    p.model,
		Messages: messages,
		Stream:   false,
	})
	if err != nil {
		return "", transportError(p.Name(), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", transportError(p.Name(), err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		e := transportError(p.Name(), err)
		metrics.ObserveProvider(p.Name(), "chat", start, e.Code)
		return "", e
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		e := statusError(p.Name(), resp.StatusCode)
		metrics.ObserveProvider(p.Name(), "chat", start, e.Code)
		return "", e
	}

	var raw ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		e := decodeError(p.Name(), err)
		metrics.ObserveProvider(p.Name(), "chat", start, e.Code)
		return "", e
	}
	metrics.ObserveProvider(p.Name(), "chat", start, "")

	return raw.Message.Content, nil
}
