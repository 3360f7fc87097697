// Package app provides TUI application adapters for command wiring.
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	shelfapp "github.com/cristianoliveira/shelf/internal/app"
	"github.com/cristianoliveira/shelf/internal/settings"
)

// ProgramRunner defines the interface for running a bubbletea program.
type ProgramRunner interface {
	// Run starts the bubbletea program with the given model.
	Run(model tea.Model) error
}

// DefaultProgramRunner wraps tea.NewProgram with standard options.
type DefaultProgramRunner struct{}

// NewDefaultProgramRunner creates a new DefaultProgramRunner.
func NewDefaultProgramRunner() *DefaultProgramRunner {
	return &DefaultProgramRunner{}
}

// Run starts a bubbletea program on the alternate screen.
func (r *DefaultProgramRunner) Run(model tea.Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// SettingsLoader defines the interface for loading settings.
type SettingsLoader interface {
	// Load loads and returns the settings.
	Load() (*settings.Settings, error)
}

// DefaultSettingsLoader wraps settings.Load for production use.
type DefaultSettingsLoader struct{}

// NewDefaultSettingsLoader creates a new DefaultSettingsLoader.
func NewDefaultSettingsLoader() *DefaultSettingsLoader {
	return &DefaultSettingsLoader{}
}

// Load loads settings using the settings package's Load function.
func (l *DefaultSettingsLoader) Load() (*settings.Settings, error) {
	return settings.Load()
}

// RuntimeFactory opens the catalog runtime the TUI drives.
type RuntimeFactory interface {
	Open() (*shelfapp.Runtime, error)
}

// DefaultRuntimeFactory opens the runtime from configuration.
type DefaultRuntimeFactory struct{}

// NewDefaultRuntimeFactory creates a new DefaultRuntimeFactory.
func NewDefaultRuntimeFactory() *DefaultRuntimeFactory {
	return &DefaultRuntimeFactory{}
}

// Open builds the runtime with app.Open.
func (f *DefaultRuntimeFactory) Open() (*shelfapp.Runtime, error) {
	return shelfapp.Open()
}
