package state

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg routes keyboard input to the active screen.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.uiState.Screen() {
	case ScreenConfirm:
		return m.handleConfirmation(msg)
	case ScreenForm:
		return m.handleFormKey(msg)
	case ScreenDetail:
		if msg.Type == tea.KeyEsc || key.Matches(msg, m.keys.Quit) {
			m.uiState.CloseModal()
		}
		return m, nil
	}

	if m.uiState.IsSearchMode() {
		return m.handleSearchKey(msg)
	}
	return m.handleListKey(msg)
}

// handleConfirmation handles the y/N delete question. Anything but y/Y or
// enter cancels.
func (m *Model) handleConfirmation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m, m.deleteTarget()
	case tea.KeyRunes:
		if len(msg.Runes) > 0 && (msg.Runes[0] == 'y' || msg.Runes[0] == 'Y') {
			return m, m.deleteTarget()
		}
	}
	m.uiState.CloseModal()
	return m, nil
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.uiState.CloseModal()
	case tea.KeyEnter:
		return m, m.submitForm()
	case tea.KeyTab, tea.KeyDown:
		m.uiState.FormFocusNext(1)
	case tea.KeyShiftTab, tea.KeyUp:
		m.uiState.FormFocusNext(-1)
	case tea.KeyBackspace:
		m.uiState.FormBackspace()
	case tea.KeySpace:
		m.uiState.FormInput(' ')
	case tea.KeyRunes:
		m.uiState.FormInput(msg.Runes...)
	}
	return m, nil
}

// handleSearchKey edits the query. Every keystroke re-filters the list.
func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.uiState.ClearSearch()
	case tea.KeyEnter:
		m.uiState.SetSearchMode(false)
		return m, nil
	case tea.KeyBackspace:
		m.uiState.BackspaceSearchQuery()
	case tea.KeySpace:
		m.uiState.AppendToSearchQuery(' ')
	case tea.KeyRunes:
		m.uiState.AppendToSearchQuery(msg.Runes...)
	case tea.KeyUp:
		m.moveCursor(-1)
		return m, nil
	case tea.KeyDown:
		m.moveCursor(1)
		return m, nil
	default:
		return m, nil
	}
	m.uiState.SetCursor(0)
	m.updateViewportContent()
	return m, nil
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.View):
		m.openDetail()
	case key.Matches(msg, m.keys.Edit):
		m.openEdit()
	case key.Matches(msg, m.keys.Add):
		m.openAdd()
	case key.Matches(msg, m.keys.Delete):
		m.openConfirm()
	case key.Matches(msg, m.keys.Favorite):
		return m, m.toggleFavorite()
	case key.Matches(msg, m.keys.Search):
		m.uiState.SetSearchMode(true)
	case key.Matches(msg, m.keys.Refresh):
		return m, m.startLoad()
	case key.Matches(msg, m.keys.Source):
		return m, m.toggleSource()
	case key.Matches(msg, m.keys.Layout):
		return m, m.toggleLayout()
	case key.Matches(msg, m.keys.Close):
		if m.uiState.GetSearchQuery() != "" {
			m.uiState.ClearSearch()
			m.updateViewportContent()
		}
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	n := len(m.visible())
	m.uiState.SetCursor(m.uiState.GetCursor() + delta)
	m.uiState.ClampCursor(n)
	m.updateViewportContent()
}
