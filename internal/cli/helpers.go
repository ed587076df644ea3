package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"codequiz/internal/config"
	"codequiz/internal/store"
)

// openArchive is a test seam for opening the challenge archive.
var openArchive = defaultOpenArchive

// defaultOpenArchive opens the configured archive, creating its directory
// when needed.
func defaultOpenArchive(cfg config.Config) (*store.Store, error) {
	if dir := filepath.Dir(cfg.Store.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create archive dir: %w", err)
		}
	}
	return store.Open(cfg.Store.Path, store.Options{
		DailyQuota:  cfg.Quota.DailyLimit,
		ResetWindow: time.Duration(cfg.Quota.ResetHours) * time.Hour,
	})
}
