package testutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// CopyFixture copies a fixture file into dir and returns the new path. It
// clones when the platform supports copy-on-write and falls back to a plain
// copy otherwise.
func CopyFixture(t testing.TB, src, dir string) string {
	t.Helper()
	dst := filepath.Join(dir, filepath.Base(src))
	if err := cloneFile(src, dst); err == nil {
		return dst
	}
	if err := copyFile(src, dst); err != nil {
		t.Fatalf("copy fixture %s: %v", src, err)
	}
	return dst
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy contents: %w", err)
	}
	return out.Close()
}
