package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"codequiz/internal/challenge"
)

// Generation parameters matching the challenge-creator prompt contract.
const (
	generationTemperature = 0.7
	generationMaxTokens   = 800
)

// jsonObjectPattern grabs the first JSON object in the completion, tolerating
// stray prose around it.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// Generator produces challenges through a completion provider.
type Generator struct {
	provider Provider
	// newTag is a seam for deterministic request tags in tests.
	newTag func() string
}

// New constructs a generator over the provider.
func New(provider Provider) *Generator {
	return &Generator{
		provider: provider,
		newTag:   uuid.NewString,
	}
}

// Generate asks the provider for one challenge of the given difficulty. Any
// transport or decode failure is returned to the caller.
func (g *Generator) Generate(ctx context.Context, difficulty string) (challenge.Challenge, error) {
	output, err := g.provider.Complete(ctx, Request{
		System:      systemPrompt,
		User:        userRequest(difficulty, g.newTag()),
		Temperature: generationTemperature,
		MaxTokens:   generationMaxTokens,
	})
	if err != nil {
		return challenge.Challenge{}, err
	}
	generated, err := ParseCompletion(output)
	if err != nil {
		return challenge.Challenge{}, err
	}
	generated.Difficulty = difficulty
	return challenge.Normalize(generated)
}

// GenerateOrFallback mirrors the resilient behavior of the generation
// endpoint: when the model call or its output fails, the static fallback
// challenge is returned along with the failure for the caller to report.
func (g *Generator) GenerateOrFallback(ctx context.Context, difficulty string) (challenge.Challenge, error) {
	generated, err := g.Generate(ctx, difficulty)
	if err != nil {
		return Fallback(), err
	}
	return generated, nil
}

// ParseCompletion extracts and decodes the challenge JSON from raw model
// output.
func ParseCompletion(output string) (challenge.Challenge, error) {
	match := jsonObjectPattern.FindString(output)
	if match == "" {
		return challenge.Challenge{}, fmt.Errorf("no JSON object found in model output")
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(match), &fields); err != nil {
		return challenge.Challenge{}, fmt.Errorf("decode model output: %w", err)
	}
	for _, required := range []string{"title", "options", "correct_answer_id", "explanation"} {
		if _, ok := fields[required]; !ok {
			return challenge.Challenge{}, fmt.Errorf("model output missing required field %q", required)
		}
	}
	var generated challenge.Challenge
	if err := json.Unmarshal([]byte(match), &generated); err != nil {
		return challenge.Challenge{}, fmt.Errorf("decode model output: %w", err)
	}
	return generated, nil
}

// Fallback returns the static challenge served when generation fails.
func Fallback() challenge.Challenge {
	return challenge.Challenge{
		Title:      "Basic Python List Operation",
		Difficulty: challenge.DifficultyEasy,
		Options: challenge.OptionList{
			"my_list.append(5)",
			"my_list.add(5)",
			"my_list.push(5)",
			"my_list.insert(5)",
		},
		CorrectAnswerID: 0,
		Explanation:     "In Python, append() is the correct method to add an element to the end of a list.",
	}
}
