// Package store provides a SQLite-backed key-value document store.
//
// The ledger persists exactly two documents: the expense list and the user
// settings, each serialized as one JSON value and replaced wholesale on
// every write. There are no partial updates.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Document keys.
const (
	KeyExpenses = "expenses"
	KeySettings = "settings"
)

// Store is a SQLite-backed document store.
type Store struct {
	db *sql.DB
}

// Open opens or creates the store database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the store database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the document stored under key. Missing documents return
// ("", false, nil) rather than an error.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM documents WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading document %q: %w", key, err)
	}
	return value, true, nil
}

// Put replaces the document stored under key.
func (s *Store) Put(key, value string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT OR REPLACE INTO documents (key, value, updated_at)
		VALUES (?, ?, ?)`, key, value, now)
	if err != nil {
		return fmt.Errorf("writing document %q: %w", key, err)
	}
	return nil
}

// DefaultPath returns the XDG-compliant database path.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "expenseai", "expenseai.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "expenseai", "expenseai.db")
}
