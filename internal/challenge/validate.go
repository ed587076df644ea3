package challenge

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a challenge.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("challenge validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Normalize trims whitespace and validates a challenge. Validation happens at
// the file and generation boundaries only; the renderer trusts its input.
func Normalize(c Challenge) (Challenge, error) {
	collector := &issueCollector{}

	c.Title = strings.TrimSpace(c.Title)
	if c.Title == "" {
		collector.add("title", "is required")
	}

	c.Difficulty = strings.ToLower(strings.TrimSpace(c.Difficulty))
	if c.Difficulty == "" {
		collector.add("difficulty", "is required")
	} else if !KnownDifficulty(c.Difficulty) {
		collector.add("difficulty", fmt.Sprintf("unknown difficulty %q", c.Difficulty))
	}

	for i, option := range c.Options {
		c.Options[i] = strings.TrimSpace(option)
	}
	if len(c.Options) < 2 {
		collector.add("options", "must include at least two entries")
	} else {
		for i, option := range c.Options {
			if option == "" {
				collector.add(fmt.Sprintf("options[%d]", i), "is required")
			}
		}
	}

	if c.CorrectAnswerID < 0 || c.CorrectAnswerID >= len(c.Options) {
		collector.add("correct_answer_id", fmt.Sprintf("index %d is out of range", c.CorrectAnswerID))
	}

	c.Explanation = strings.TrimSpace(c.Explanation)
	if c.Explanation == "" {
		collector.add("explanation", "is required")
	}

	if err := collector.result(); err != nil {
		return Challenge{}, err
	}
	return c, nil
}
