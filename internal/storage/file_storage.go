package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStorage keeps every key in one JSON object on disk. Writes go to a
// temp file that is renamed over the original under a directory lock.
type FileStorage struct {
	mu      sync.Mutex
	path    string
	lockDir string
}

var (
	_ KV     = (*FileStorage)(nil)
	_ Lister = (*FileStorage)(nil)
)

// NewFileStorage stores data at path, creating its parent directory.
func NewFileStorage(path string) (*FileStorage, error) {
	if path == "" {
		return nil, fmt.Errorf("file storage: path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), FileModeDir); err != nil {
		return nil, fmt.Errorf("file storage: create directory: %w", err)
	}
	return &FileStorage{path: path, lockDir: path + ".lock"}, nil
}

// Path returns the backing file.
func (fs *FileStorage) Path() string { return fs.path }

func (fs *FileStorage) Get(key string) (string, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	data, err := fs.read()
	if err != nil {
		return "", err
	}
	v, ok := data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (fs *FileStorage) Set(key, value string) error {
	return fs.update(func(data map[string]string) { data[key] = value })
}

func (fs *FileStorage) Delete(key string) error {
	return fs.update(func(data map[string]string) { delete(data, key) })
}

func (fs *FileStorage) All() (map[string]string, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.read()
}

func (fs *FileStorage) Close() error { return nil }

func (fs *FileStorage) update(fn func(map[string]string)) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return WithLock(fs.lockDir, func() error {
		data, err := fs.read()
		if err != nil {
			return err
		}
		fn(data)
		return fs.write(data)
	})
}

func (fs *FileStorage) read() (map[string]string, error) {
	raw, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("file storage: read %s: %w", fs.path, err)
	}
	data := map[string]string{}
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("file storage: decode %s: %w", fs.path, err)
	}
	return data, nil
}

func (fs *FileStorage) write(data map[string]string) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("file storage: encode: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(fs.path), filepath.Base(fs.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("file storage: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("file storage: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("file storage: close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, FileModeFile); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("file storage: chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, fs.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("file storage: replace %s: %w", fs.path, err)
	}
	return nil
}
