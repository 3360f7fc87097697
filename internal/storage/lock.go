package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	lockTimeout = 10 * time.Second
	lockRetry   = 50 * time.Millisecond
)

// Lock is a directory lock: holding it means having created dir.
type Lock struct {
	dir     string
	timeout time.Duration
}

// NewLock creates a lock at the given directory path.
func NewLock(dir string) *Lock {
	return &Lock{dir: dir, timeout: lockTimeout}
}

// Acquire creates the lock directory, retrying until the timeout.
func (l *Lock) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(l.dir), FileModeDir); err != nil {
		return fmt.Errorf("create lock parent: %w", err)
	}
	deadline := time.Now().Add(l.timeout)
	for {
		err := os.Mkdir(l.dir, FileModeDir)
		if err == nil {
			return nil
		}
		if !os.IsExist(err) {
			return fmt.Errorf("create lock directory: %w", err)
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("lock %s still held after %s", l.dir, l.timeout)
		}
		time.Sleep(lockRetry)
	}
}

// Release removes the lock directory.
func (l *Lock) Release() error {
	return os.Remove(l.dir)
}

// WithLock executes fn while holding the lock.
func WithLock(dir string, fn func() error) error {
	lock := NewLock(dir)
	if err := lock.Acquire(); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer func() { _ = lock.Release() }()
	return fn()
}
