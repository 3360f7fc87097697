// Package state implements the bubbletea model of the catalog TUI.
package state

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/shelf/internal/catalog"
	"github.com/cristianoliveira/shelf/internal/errors"
	"github.com/cristianoliveira/shelf/internal/product"
	"github.com/cristianoliveira/shelf/internal/search"
	"github.com/cristianoliveira/shelf/internal/settings"
	"github.com/cristianoliveira/shelf/internal/wishlist"
)

const (
	headerFooterLines     = 3
	defaultViewportWidth  = 80
	defaultViewportHeight = 24

	loadingText = "Loading..."
	doneText    = "Done"
)

// Flows is the part of catalog.Service the TUI drives.
type Flows interface {
	Fetch(ctx context.Context, useAPI bool) (catalog.Snapshot, error)
	Submit(ctx context.Context, f catalog.Form, useAPI bool) (catalog.Mutation, error)
	Delete(ctx context.Context, id product.ID, useAPI bool) (catalog.Mutation, error)
	ToggleFavorite(st *catalog.State, id string) (wishlist.Icon, error)
}

var _ Flows = (*catalog.Service)(nil)

// Config holds everything the model needs besides the flows.
type Config struct {
	// Context bounds every network call started by the model.
	Context context.Context
	UseAPI  bool
	Search  search.Provider
	// Settings are the loaded TUI preferences; nil means defaults.
	Settings *settings.Settings
	// SaveSettings persists preferences; nil disables saving.
	SaveSettings func(*settings.Settings) error
}

// Model represents the TUI model for bubbletea.
type Model struct {
	uiState  *UIState
	messages *errors.TUIHandler
	keys     keyMap

	catalog  *catalog.State
	flows    Flows
	search   search.Provider
	settings *settings.Settings
	save     func(*settings.Settings) error
	ctx      context.Context

	loadGen    uint64
	submitting bool
	deleting   bool

	// tick schedules msg after d; replaced in tests.
	tick func(d time.Duration, msg tea.Msg) tea.Cmd
}

// NewModel creates a new TUI model.
func NewModel(flows Flows, cfg Config) *Model {
	if flows == nil {
		panic("state.NewModel: flows must not be nil")
	}
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	if cfg.Search == nil {
		cfg.Search = search.NewSubstringProvider()
	}
	if cfg.Settings == nil {
		cfg.Settings = settings.DefaultSettings()
	}
	return &Model{
		uiState:  NewUIState(),
		messages: errors.NewTUIHandler(),
		keys:     defaultKeyMap(),
		catalog:  catalog.NewState(cfg.UseAPI),
		flows:    flows,
		search:   cfg.Search,
		settings: cfg.Settings,
		save:     cfg.SaveSettings,
		ctx:      cfg.Context,
		tick: func(d time.Duration, msg tea.Msg) tea.Cmd {
			return tea.Tick(d, func(time.Time) tea.Msg { return msg })
		},
	}
}

// Init starts the first load.
func (m *Model) Init() tea.Cmd {
	return m.startLoad()
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case loadedMsg:
		return m, m.handleLoaded(msg)
	case submittedMsg:
		return m, m.handleSubmitted(msg)
	case deletedMsg:
		return m, m.handleDeleted(msg)
	case clearMessageMsg:
		m.messages.Expire(msg.seq)
		return m, nil
	case saveSettingsSuccessMsg:
		return m, nil
	case saveSettingsFailedMsg:
		return m, m.showMessage(errors.Describe(errors.OpSave, msg.err), errors.MessageTypeError, errors.TimeoutSave)
	}
	return m, nil
}

// State exposes the catalog state owned by the model.
func (m *Model) State() *catalog.State {
	return m.catalog
}

// showMessage replaces the status line and schedules its expiry. An older
// message's pending expiry cannot clear this one.
func (m *Model) showMessage(text string, typ errors.MessageType, timeout time.Duration) tea.Cmd {
	shown := m.messages.Show(text, typ, timeout)
	if timeout <= 0 {
		return nil
	}
	return m.tick(timeout, clearMessageMsg{seq: shown.Seq})
}

// visible returns the items matching the current search query.
func (m *Model) visible() []product.Product {
	return m.catalog.Filter(m.search, m.uiState.GetSearchQuery())
}

// selected returns the item under the cursor.
func (m *Model) selected() (product.Product, bool) {
	items := m.visible()
	cursor := m.uiState.GetCursor()
	if cursor < 0 || cursor >= len(items) {
		return product.Product{}, false
	}
	return items[cursor], true
}

func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.uiState.SetWidth(msg.Width)
	m.uiState.SetHeight(msg.Height)
	m.uiState.UpdateViewportSize()
	m.updateViewportContent()
	return m, nil
}
