package cli

import (
	"context"
	"path/filepath"
	"testing"

	"codequiz/internal/challenge"
	"codequiz/internal/config"
	"codequiz/internal/store"
	"codequiz/internal/testutil"
)

// useTempArchive points openArchive at a throwaway DuckDB file and returns
// its path so tests can seed or inspect it between command runs.
func useTempArchive(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "archive.duckdb")
	orig := openArchive
	openArchive = func(config.Config) (*store.Store, error) {
		return store.Open(path, store.Options{})
	}
	t.Cleanup(func() { openArchive = orig })
	return path
}

// seedChallenge inserts a challenge directly into the archive file.
func seedChallenge(t *testing.T, path string, c challenge.Challenge) challenge.Challenge {
	t.Helper()
	archive, err := store.Open(path, store.Options{})
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer func() { _ = archive.Close() }()
	inserted, err := archive.InsertChallenge(context.Background(), c)
	if err != nil {
		t.Fatalf("seed challenge: %v", err)
	}
	return inserted
}

func sampleChallenge() challenge.Challenge {
	return challenge.Challenge{
		Title:           "What does append return?",
		Difficulty:      challenge.DifficultyEasy,
		CreatedBy:       "local",
		Options:         challenge.OptionList{"A new slice header", "Always the same slice", "An error", "Nothing"},
		CorrectAnswerID: 0,
		Explanation:     "append may reallocate, so the returned header must be kept.",
	}
}

// writeChallengeFile copies the valid challenge fixture into a temp dir.
func writeChallengeFile(t *testing.T) string {
	t.Helper()
	return testutil.CopyFixture(t, filepath.Join("testdata", "challenge.yml"), t.TempDir())
}
