package generator

import (
	"context"
	"strings"
	"testing"
	"time"

	"codequiz/internal/challenge"
	"codequiz/internal/testutil"
)

// fakeProvider returns canned completions.
type fakeProvider struct {
	output  string
	err     error
	lastReq Request
}

func (p *fakeProvider) Complete(_ context.Context, req Request) (string, error) {
	p.lastReq = req
	return p.output, p.err
}

// TestGenerateParsesCompletion verifies a clean completion becomes a
// normalized challenge.
func TestGenerateParsesCompletion(t *testing.T) {
	provider := &fakeProvider{output: `{
  "title": "Which keyword starts a goroutine?",
  "options": ["go", "run", "spawn", "async"],
  "correct_answer_id": 0,
  "explanation": "The go statement starts a new goroutine."
}`}
	g := New(provider)
	g.newTag = func() string { return "tag-1" }
	ctx := testutil.Context(t, 5*time.Second)

	generated, err := g.Generate(ctx, challenge.DifficultyMedium)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if generated.Difficulty != challenge.DifficultyMedium {
		t.Fatalf("expected requested difficulty, got %q", generated.Difficulty)
	}
	if len(generated.Options) != 4 || generated.Options[0] != "go" {
		t.Fatalf("unexpected options: %+v", generated.Options)
	}
	if !strings.Contains(provider.lastReq.User, "medium") {
		t.Fatalf("expected difficulty in user request, got %q", provider.lastReq.User)
	}
	if !strings.Contains(provider.lastReq.User, "tag-1") {
		t.Fatalf("expected request tag, got %q", provider.lastReq.User)
	}
}

// TestParseCompletionTrimsSurroundingProse verifies extraction of the JSON
// object from chatty output.
func TestParseCompletionTrimsSurroundingProse(t *testing.T) {
	output := "Sure! Here is your challenge:\n" +
		`{"title": "Q", "options": ["a", "b"], "correct_answer_id": 1, "explanation": "e"}` +
		"\nEnjoy!"
	parsed, err := ParseCompletion(output)
	if err != nil {
		t.Fatalf("parse completion: %v", err)
	}
	if parsed.Title != "Q" || parsed.CorrectAnswerID != 1 {
		t.Fatalf("unexpected parse result: %+v", parsed)
	}
}

// TestParseCompletionMissingField verifies required-field checking.
func TestParseCompletionMissingField(t *testing.T) {
	output := `{"title": "Q", "options": ["a", "b"], "explanation": "e"}`
	if _, err := ParseCompletion(output); err == nil {
		t.Fatalf("expected missing field failure")
	}
}

// TestParseCompletionNoJSON verifies plain prose is rejected.
func TestParseCompletionNoJSON(t *testing.T) {
	if _, err := ParseCompletion("I cannot do that."); err == nil {
		t.Fatalf("expected failure without a JSON object")
	}
}

// TestGenerateOrFallback verifies the static fallback on provider failure.
func TestGenerateOrFallback(t *testing.T) {
	provider := &fakeProvider{output: "garbage"}
	g := New(provider)
	ctx := testutil.Context(t, 5*time.Second)

	generated, err := g.GenerateOrFallback(ctx, challenge.DifficultyEasy)
	if err == nil {
		t.Fatalf("expected reported failure alongside fallback")
	}
	if generated.Title != Fallback().Title {
		t.Fatalf("expected fallback challenge, got %+v", generated)
	}
	if _, normErr := challenge.Normalize(generated); normErr != nil {
		t.Fatalf("fallback must validate: %v", normErr)
	}
}
