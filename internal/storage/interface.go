// Package storage provides the local key/value store used for persisted
// client state such as the wishlist.
package storage

import (
	"os"

	"github.com/cristianoliveira/shelf/internal/storage/sqlite"
)

// File permission constants
const (
	// FileModeDir is the permission for directories (rwxr-xr-x)
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for data files (rw-------)
	FileModeFile os.FileMode = 0600
)

// ErrNotFound is returned by Get when the key has no value. Every backend
// returns this same value.
var ErrNotFound = sqlite.ErrNotFound

// KV stores string values by key.
type KV interface {
	// Get returns ErrNotFound when the key is absent.
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// Lister is implemented by stores that can enumerate their contents.
type Lister interface {
	All() (map[string]string, error)
}
