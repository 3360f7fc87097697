// Package settings provides TUI user preferences persistence.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cristianoliveira/shelf/internal/colors"
	"github.com/cristianoliveira/shelf/internal/config"
	"github.com/pelletier/go-toml/v2"
)

// File permission constants
const (
	// FileModeDir is the permission for directories (rwxr-xr-x)
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for data files (rw-r--r--)
	FileModeFile os.FileMode = 0644

	// FileName is the settings file stored in config_dir.
	FileName = "tui.toml"
)

// View mode constants.
const (
	ViewModeCards   = "cards"
	ViewModeCompact = "compact"
)

// Settings holds the persisted TUI preferences.
//
// TOML layout:
//
//	view_mode = "cards"
//
// Settings are stored at ~/.config/shelf/tui.toml
type Settings struct {
	// ViewMode selects the list layout: "cards" or "compact".
	// Empty string means use the default (cards).
	ViewMode string `toml:"view_mode"`
}

// DefaultSettings returns settings with all default values.
func DefaultSettings() *Settings {
	return &Settings{ViewMode: ViewModeCards}
}

// Compact reports whether the list should render one line per product.
func (s *Settings) Compact() bool {
	return s != nil && s.ViewMode == ViewModeCompact
}

// ToggleViewMode switches between cards and compact.
func (s *Settings) ToggleViewMode() {
	if s.Compact() {
		s.ViewMode = ViewModeCards
		return
	}
	s.ViewMode = ViewModeCompact
}

// Path returns the filesystem path of the settings file.
func Path() string {
	if override := config.Get("tui_settings_path", ""); override != "" {
		return override
	}
	return filepath.Join(resolveConfigDir(), FileName)
}

func resolveConfigDir() string {
	if dir := config.Get("config_dir", ""); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" {
		xdgConfigHome = filepath.Join(home, ".config")
	}
	return filepath.Join(xdgConfigHome, "shelf")
}

// Load reads settings from the config directory.
// A missing file yields defaults. Invalid values are replaced by defaults
// with a warning; only unreadable or unparsable files return an error.
func Load() (*Settings, error) {
	path := Path()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	s := DefaultSettings()
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	if err := Validate(s); err != nil {
		colors.Warning(fmt.Sprintf("%v in %s, using default", err, path))
		s.ViewMode = ViewModeCards
	}
	normalize(s)
	return s, nil
}

// Save writes settings to the config directory, creating it if needed.
func Save(s *Settings) error {
	if err := Validate(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	normalize(s)

	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), FileModeDir); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("# shelf TUI settings\n")
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), FileModeFile); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// Reset removes the settings file and returns the defaults.
// Removing a file that does not exist is not an error.
func Reset() (*Settings, error) {
	if err := os.Remove(Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to remove settings file: %w", err)
	}
	return DefaultSettings(), nil
}

func normalize(s *Settings) {
	if s.ViewMode == "" {
		s.ViewMode = ViewModeCards
	}
}
