package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"codequiz/internal/ui/history"
)

// TestHistoryEmptyArchive prints a hint instead of a table.
func TestHistoryEmptyArchive(t *testing.T) {
	useTempArchive(t)

	cmd := findCommand("history")
	var stdout, stderr bytes.Buffer
	code := cmd.Run(nil, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "No archived challenges yet") {
		t.Fatalf("expected empty-archive hint, got %q", stdout.String())
	}
}

// TestHistoryPlainListing prints one line per archived challenge.
func TestHistoryPlainListing(t *testing.T) {
	path := useTempArchive(t)
	inserted := seedChallenge(t, path, sampleChallenge())

	cmd := findCommand("history")
	var stdout, stderr bytes.Buffer
	code := cmd.Run([]string{"--ui", "plain"}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, stderr.String())
	}
	output := stdout.String()
	if !strings.Contains(output, shortID(inserted.ID)) {
		t.Fatalf("expected truncated id, got %q", output)
	}
	if !strings.Contains(output, inserted.Title) {
		t.Fatalf("expected title, got %q", output)
	}
	if !strings.Contains(output, "easy") {
		t.Fatalf("expected difficulty, got %q", output)
	}
}

// TestHistoryLiveLaunchesProgram hands the archived challenges to the table
// view.
func TestHistoryLiveLaunchesProgram(t *testing.T) {
	path := useTempArchive(t)
	seedChallenge(t, path, sampleChallenge())

	origTerm := isTerminal
	isTerminal = func(io.Writer) bool { return true }
	t.Cleanup(func() { isTerminal = origTerm })

	var gotModel tea.Model
	origRun := runHistoryProgram
	runHistoryProgram = func(model tea.Model, _ io.Writer) error {
		gotModel = model
		return nil
	}
	t.Cleanup(func() { runHistoryProgram = origRun })

	cmd := findCommand("history")
	var stdout, stderr bytes.Buffer
	code := cmd.Run([]string{"--ui", "live"}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit ok, got %d: %s", code, stderr.String())
	}
	if _, ok := gotModel.(history.Model); !ok {
		t.Fatalf("expected history model, got %T", gotModel)
	}
}
