// Command seedarchive fills a challenge archive from a directory of
// challenge files. Useful for preparing demo databases for the history and
// serve commands.
package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"codequiz/internal/challenge"
	"codequiz/internal/store"
)

func main() {
	dir := flag.String("dir", "", "directory of challenge YAML/JSON files")
	out := flag.String("out", "", "output archive path")
	user := flag.String("user", "local", "creator recorded on seeded challenges")
	flag.Parse()
	if *dir == "" || *out == "" {
		fmt.Fprintln(os.Stderr, "usage: seedarchive --dir <challenges dir> --out <archive file>")
		os.Exit(2)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	count, err := seed(ctx, *dir, *out, *user)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed archive: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Archived %d challenges into %s\n", count, *out)
}

func seed(ctx context.Context, dir, out, user string) (int, error) {
	paths, err := challengeFiles(dir)
	if err != nil {
		return 0, err
	}
	if len(paths) == 0 {
		return 0, fmt.Errorf("no challenge files under %s", dir)
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}
	archive, err := store.Open(out, store.Options{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = archive.Close() }()

	for _, path := range paths {
		c, err := challenge.Load(path)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", path, err)
		}
		c.CreatedBy = user
		if _, err := archive.InsertChallenge(ctx, c); err != nil {
			return 0, fmt.Errorf("%s: %w", path, err)
		}
	}
	return len(paths), nil
}

func challengeFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".yml", ".yaml", ".json":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	return paths, nil
}
