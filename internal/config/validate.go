package config

import (
	"fmt"
	"strings"

	"codequiz/internal/challenge"
)

// Issue captures a validation problem in the configuration.
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
	return fmt.Sprintf("config validation failed: %s", strings.Join(parts, "; "))
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

// Validate checks a normalized configuration.
func Validate(cfg *Config) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if !challenge.KnownDifficulty(cfg.Generation.Difficulty) {
		collector.add("generation.difficulty", fmt.Sprintf("unknown difficulty %q", cfg.Generation.Difficulty))
	}

	if cfg.Quota.DailyLimit < 0 {
		collector.add("quota.daily_limit", "must not be negative")
	}
	if cfg.Quota.ResetHours <= 0 {
		collector.add("quota.reset_hours", "must be positive")
	}

	switch cfg.UI.Mode {
	case "auto", "live", "plain":
	default:
		collector.add("ui.mode", fmt.Sprintf("invalid mode %q (expected auto|live|plain)", cfg.UI.Mode))
	}

	return collector.result()
}
