package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/shelf/internal/colors"
	"github.com/cristianoliveira/shelf/internal/config"
	"github.com/cristianoliveira/shelf/internal/storage/sqlite"
)

const (
	// BackendFile selects the JSON file store.
	BackendFile = config.StorageBackendFile
	// BackendSQLite selects the SQLite store.
	BackendSQLite = config.StorageBackendSQLite

	fileStoreName   = "store.json"
	sqliteStoreName = "store.db"
)

var _ KV = (*sqlite.Store)(nil)

// NewFromConfig opens the configured backend inside state_dir.
func NewFromConfig() (KV, error) {
	stateDir := config.Get("state_dir", "")
	if stateDir == "" {
		return nil, fmt.Errorf("storage: state_dir not configured")
	}
	return NewForBackend(config.Get("storage_backend", BackendSQLite), stateDir)
}

// NewForBackend opens the named backend in dir. SQLite failures fall back
// to the file store with a warning.
func NewForBackend(backend, dir string) (KV, error) {
	if err := os.MkdirAll(dir, FileModeDir); err != nil {
		return nil, fmt.Errorf("storage: create state directory: %w", err)
	}
	filePath := filepath.Join(dir, fileStoreName)

	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendFile:
		return NewFileStorage(filePath)
	case "", BackendSQLite:
		dbPath := filepath.Join(dir, sqliteStoreName)
		store, err := sqlite.Open(dbPath)
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to open sqlite store, falling back to file: %v", err))
			return NewFileStorage(filePath)
		}
		if err := importFileStore(filePath, store); err != nil {
			colors.Warning(fmt.Sprintf("could not import %s into sqlite: %v", filePath, err))
		}
		return store, nil
	default:
		colors.Warning(fmt.Sprintf("unknown storage backend '%s', falling back to file", backend))
		return NewFileStorage(filePath)
	}
}

// importFileStore copies keys from a file store into an empty SQLite store,
// so switching backends keeps the wishlist.
func importFileStore(filePath string, dst *sqlite.Store) error {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil
	}
	empty, err := dst.Empty()
	if err != nil || !empty {
		return err
	}
	src, err := NewFileStorage(filePath)
	if err != nil {
		return err
	}
	entries, err := src.All()
	if err != nil {
		return err
	}
	for k, v := range entries {
		if err := dst.Set(k, v); err != nil {
			return err
		}
	}
	if len(entries) > 0 {
		colors.Debug(fmt.Sprintf("imported %d keys from %s", len(entries), filePath))
	}
	return nil
}
