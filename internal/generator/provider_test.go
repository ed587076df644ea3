package generator

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"codequiz/internal/testutil"
)

// fakeDoer captures the outgoing request and serves a canned response.
type fakeDoer struct {
	status  int
	body    string
	lastReq *http.Request
	lastBody []byte
}

func (d *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	d.lastReq = req
	if req.Body != nil {
		data, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		d.lastBody = data
	}
	return &http.Response{
		StatusCode: d.status,
		Body:       io.NopCloser(strings.NewReader(d.body)),
		Header:     http.Header{},
	}, nil
}

// TestOpenRouterComplete verifies the request shape and response decoding.
func TestOpenRouterComplete(t *testing.T) {
	doer := &fakeDoer{
		status: http.StatusOK,
		body:   `{"choices": [{"message": {"role": "assistant", "content": "hello"}}]}`,
	}
	provider, err := NewOpenRouterProvider("test/model", "secret", "", doer)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	ctx := testutil.Context(t, 5*time.Second)

	output, err := provider.Complete(ctx, Request{
		System:      "sys",
		User:        "usr",
		Temperature: 0.7,
		MaxTokens:   800,
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if output != "hello" {
		t.Fatalf("expected content 'hello', got %q", output)
	}
	if got := doer.lastReq.URL.String(); got != defaultOpenRouterBaseURL+"/chat/completions" {
		t.Fatalf("unexpected url %q", got)
	}
	if got := doer.lastReq.Header.Get("Authorization"); got != "Bearer secret" {
		t.Fatalf("unexpected auth header %q", got)
	}

	var payload chatRequest
	if err := json.Unmarshal(doer.lastBody, &payload); err != nil {
		t.Fatalf("decode request body: %v", err)
	}
	if payload.Model != "test/model" || payload.MaxTokens != 800 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if len(payload.Messages) != 2 || payload.Messages[0].Role != "system" {
		t.Fatalf("unexpected messages: %+v", payload.Messages)
	}
}

// TestOpenRouterCompleteErrorStatus verifies non-200 responses fail.
func TestOpenRouterCompleteErrorStatus(t *testing.T) {
	doer := &fakeDoer{status: http.StatusTooManyRequests, body: `{"error": {"message": "slow down"}}`}
	provider, err := NewOpenRouterProvider("test/model", "secret", "", doer)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	ctx := testutil.Context(t, 5*time.Second)
	if _, err := provider.Complete(ctx, Request{User: "usr"}); err == nil {
		t.Fatalf("expected failure on 429")
	}
}

// TestProviderFromEnvRequiresKey verifies the key must come from the
// environment.
func TestProviderFromEnvRequiresKey(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")
	if _, err := ProviderFromEnv("test/model", "", nil); err == nil {
		t.Fatalf("expected missing key failure")
	}
	t.Setenv("LLM_API_KEY", "k")
	if _, err := ProviderFromEnv("test/model", "", nil); err != nil {
		t.Fatalf("provider from env: %v", err)
	}
}
