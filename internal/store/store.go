package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
)

// ErrNotFound reports a missing challenge row.
var ErrNotFound = errors.New("store: challenge not found")

// ErrQuotaExhausted reports that a user has no generations left today.
var ErrQuotaExhausted = errors.New("store: quota exhausted")

// DefaultDailyQuota is the number of generations granted per reset window.
const DefaultDailyQuota = 50

// DefaultResetWindow is how long a quota lasts before it refills.
const DefaultResetWindow = 24 * time.Hour

// Options tunes quota accounting.
type Options struct {
	DailyQuota  int
	ResetWindow time.Duration
}

// Store is the DuckDB-backed challenge archive.
type Store struct {
	db          *sql.DB
	dailyQuota  int
	resetWindow time.Duration
	// now is a test seam for quota reset timing.
	now func() time.Time
}

// Open opens (or creates) the archive database at path and applies the
// schema. An empty path opens an in-memory database.
func Open(path string, opts Options) (*Store, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping archive: %w", err)
	}
	if err := EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply archive schema: %w", err)
	}
	return New(db, opts), nil
}

// New wraps an existing connection. The caller keeps ownership of db only
// when it did not come from Open.
func New(db *sql.DB, opts Options) *Store {
	dailyQuota := opts.DailyQuota
	if dailyQuota <= 0 {
		dailyQuota = DefaultDailyQuota
	}
	resetWindow := opts.ResetWindow
	if resetWindow <= 0 {
		resetWindow = DefaultResetWindow
	}
	return &Store{
		db:          db,
		dailyQuota:  dailyQuota,
		resetWindow: resetWindow,
		now:         time.Now,
	}
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB exposes the underlying connection for read-only consumers.
func (s *Store) DB() *sql.DB {
	return s.db
}
