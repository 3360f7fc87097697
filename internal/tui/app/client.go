package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	shelfapp "github.com/cristianoliveira/shelf/internal/app"
	"github.com/cristianoliveira/shelf/internal/colors"
	"github.com/cristianoliveira/shelf/internal/settings"
	"github.com/cristianoliveira/shelf/internal/tui/state"
)

// Model defines the narrow TUI model surface used by command wiring.
type Model interface {
	tea.Model
}

// Client defines dependencies needed by the tui command.
type Client interface {
	LoadSettings() (*settings.Settings, error)
	CreateModel(ctx context.Context, loaded *settings.Settings) (Model, error)
	RunProgram(model Model) error
}

// DefaultClient is the default adapter-based implementation used by CLI wiring.
type DefaultClient struct {
	runtimeFactory RuntimeFactory
	programRunner  ProgramRunner
	settingsLoader SettingsLoader
	saveSettings   func(*settings.Settings) error

	runtime *shelfapp.Runtime
}

// NewDefaultClient creates a default TUI client adapter. Nil arguments
// are replaced by the default implementations.
func NewDefaultClient(runtimeFactory RuntimeFactory, programRunner ProgramRunner, settingsLoader SettingsLoader) *DefaultClient {
	if runtimeFactory == nil {
		runtimeFactory = NewDefaultRuntimeFactory()
	}
	if programRunner == nil {
		programRunner = NewDefaultProgramRunner()
	}
	if settingsLoader == nil {
		settingsLoader = NewDefaultSettingsLoader()
	}
	return &DefaultClient{
		runtimeFactory: runtimeFactory,
		programRunner:  programRunner,
		settingsLoader: settingsLoader,
		saveSettings:   settings.Save,
	}
}

// LoadSettings loads persisted settings using the injected SettingsLoader.
func (d *DefaultClient) LoadSettings() (*settings.Settings, error) {
	return d.settingsLoader.Load()
}

// CreateModel opens the runtime and builds the TUI model on top of it.
func (d *DefaultClient) CreateModel(ctx context.Context, loaded *settings.Settings) (Model, error) {
	rt, err := d.runtimeFactory.Open()
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	d.runtime = rt
	return state.NewModel(rt.Service, state.Config{
		Context:      ctx,
		UseAPI:       rt.UseAPI,
		Search:       rt.Search,
		Settings:     loaded,
		SaveSettings: d.saveSettings,
	}), nil
}

// RunProgram starts the bubbletea program and closes the runtime when it
// exits.
func (d *DefaultClient) RunProgram(model Model) error {
	defer func() {
		if err := d.runtime.Close(); err != nil {
			colors.Warning(fmt.Sprintf("closing store: %v", err))
		}
		d.runtime = nil
	}()

	if err := d.programRunner.Run(model); err != nil {
		colors.Error(fmt.Sprintf("Error running TUI: %v", err))
		return err
	}
	return nil
}
