// Package sqlite provides a SQLite-backed key/value store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`

// Store implements a key/value store on one SQLite table.
type Store struct {
	db *sql.DB
}

// Open creates or opens the database at dbPath.
func Open(dbPath string) (*Store, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("sqlite store: db path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite store: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite store: open db: %w", err)
	}
	s := &Store{db: db}
	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("sqlite store: set busy timeout: %w", err)
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("sqlite store: create schema: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(context.Background(), "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("sqlite store: get %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) Set(key, value string) error {
	_, err := s.db.ExecContext(context.Background(),
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("sqlite store: set %q: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(key string) error {
	if _, err := s.db.ExecContext(context.Background(), "DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("sqlite store: delete %q: %w", key, err)
	}
	return nil
}

// All returns every stored pair.
func (s *Store) All() (map[string]string, error) {
	rows, err := s.db.QueryContext(context.Background(), "SELECT key, value FROM kv")
	if err != nil {
		return nil, fmt.Errorf("sqlite store: list: %w", err)
	}
	defer rows.Close()

	out := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("sqlite store: scan: %w", err)
		}
		out[k] = v
	}
	return out, rows.Err()
}

// Empty reports whether the table holds no rows.
func (s *Store) Empty() (bool, error) {
	var n int
	if err := s.db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM kv").Scan(&n); err != nil {
		return false, fmt.Errorf("sqlite store: count: %w", err)
	}
	return n == 0, nil
}
