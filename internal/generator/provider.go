package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// defaultOpenRouterBaseURL is the default OpenRouter API base URL.
const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// HTTPDoer abstracts HTTP clients used by providers.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Request is one chat completion request.
type Request struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// Provider produces a completion for a prompt.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// OpenRouterProvider implements Provider for the OpenRouter API.
type OpenRouterProvider struct {
	APIKey  string
	BaseURL string
	Client  HTTPDoer
	Model   string
}

// ProviderFromEnv builds a provider using environment configuration. The API
// key always comes from LLM_API_KEY, never from a config file.
func ProviderFromEnv(model, baseURL string, client HTTPDoer) (Provider, error) {
	apiKey := strings.TrimSpace(os.Getenv("LLM_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("LLM_API_KEY is required")
	}
	return NewOpenRouterProvider(model, apiKey, baseURL, client)
}

// NewOpenRouterProvider constructs an OpenRouter provider with explicit settings.
func NewOpenRouterProvider(model, apiKey, baseURL string, client HTTPDoer) (*OpenRouterProvider, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("model is required")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultOpenRouterBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &OpenRouterProvider{
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  client,
		Model:   model,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends a chat completion request and returns the message text.
func (p *OpenRouterProvider) Complete(ctx context.Context, req Request) (string, error) {
	payload := chatRequest{
		Model:       p.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode completion request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read completion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion request failed with status %d: %s", resp.StatusCode, truncate(string(data), 200))
	}
	var decoded chatResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if decoded.Error != nil {
		return "", fmt.Errorf("completion error: %s", decoded.Error.Message)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("completion response has no choices")
	}
	return decoded.Choices[0].Message.Content, nil
}

func truncate(value string, limit int) string {
	if len(value) <= limit {
		return value
	}
	return value[:limit] + "..."
}
