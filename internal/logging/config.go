// Package logging writes structured JSON log files for shelf.
package logging

import (
	"os"
	"path/filepath"

	"github.com/cristianoliveira/shelf/internal/config"
)

// FilePrefix starts every log file name written by shelf.
const FilePrefix = "shelf_"

// Config holds logging configuration.
type Config struct {
	Enabled  bool
	Level    string
	MaxFiles int
	// Command names the CLI command that owns the log file.
	Command string
	PID     int
}

// DefaultConfig returns a disabled Config at info level.
func DefaultConfig() Config {
	return Config{
		Level:    "info",
		MaxFiles: 10,
		Command:  filepath.Base(os.Args[0]),
		PID:      os.Getpid(),
	}
}

// FromGlobalConfig reads logging settings from the loaded configuration.
// The debug flag forces the debug level.
func FromGlobalConfig() Config {
	cfg := DefaultConfig()
	cfg.Enabled = config.GetBool("logging_enabled", false)
	cfg.Level = config.Get("logging_level", "info")
	cfg.MaxFiles = config.GetInt("logging_max_files", 10)
	if config.GetBool("debug", false) {
		cfg.Level = "debug"
	}
	return cfg
}

// LogDir returns {state_dir}/logs, falling back to a directory under
// os.TempDir when the state directory is not writable.
func LogDir() (string, error) {
	if stateDir := config.Get("state_dir", ""); stateDir != "" {
		dir := filepath.Join(stateDir, "logs")
		if err := os.MkdirAll(dir, 0700); err == nil && writable(dir) {
			return dir, nil
		}
	}
	dir := filepath.Join(os.TempDir(), "shelf", "logs")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}

func writable(dir string) bool {
	testFile := filepath.Join(dir, ".write_test")
	f, err := os.Create(testFile)
	if err != nil {
		return false
	}
	_ = f.Close()
	_ = os.Remove(testFile)
	return true
}
