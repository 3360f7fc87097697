package state

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/shelf/internal/catalog"
	"github.com/cristianoliveira/shelf/internal/errors"
	"github.com/cristianoliveira/shelf/internal/logging"
	"github.com/cristianoliveira/shelf/internal/product"
	"github.com/cristianoliveira/shelf/internal/tui/render"
)

// startLoad shows the loading message and fetches in the background.
// Results of earlier loads are dropped when they arrive late.
func (m *Model) startLoad() tea.Cmd {
	m.loadGen++
	gen := m.loadGen
	useAPI := m.catalog.UseAPI
	ctx := m.ctx
	flows := m.flows

	m.showMessage(loadingText, errors.MessageTypeInfo, 0)
	return func() tea.Msg {
		snap, err := flows.Fetch(ctx, useAPI)
		return loadedMsg{gen: gen, snap: snap, err: err}
	}
}

func (m *Model) handleLoaded(msg loadedMsg) tea.Cmd {
	if msg.gen != m.loadGen {
		return nil
	}
	if pruned := m.catalog.ApplySnapshot(msg.snap); pruned {
		logging.Debug("dropped favorites missing from the catalog", "favorites", len(m.catalog.Wishlist))
	}
	m.uiState.ClampCursor(len(m.visible()))
	m.updateViewportContent()

	if msg.err != nil {
		return m.showMessage(errors.Describe(errors.OpLoad, msg.err), errors.MessageTypeError, errors.TimeoutLoad)
	}
	return m.showMessage(doneText, errors.MessageTypeSuccess, errors.TimeoutDone)
}

// submitForm validates the open form and runs the submit in the
// background. A validation failure keeps the form open.
func (m *Model) submitForm() tea.Cmd {
	if m.submitting {
		return nil
	}
	values, _, target := m.uiState.Form()
	form := catalog.Form{
		ID:          target,
		Name:        values.Name,
		Price:       values.Price,
		Description: values.Description,
		Image:       values.Image,
	}
	if _, err := catalog.BuildPayload(form); err != nil {
		return m.showMessage(err.Error(), errors.MessageTypeError, errors.TimeoutValidation)
	}

	m.submitting = true
	useAPI := m.catalog.UseAPI
	ctx := m.ctx
	flows := m.flows
	return func() tea.Msg {
		mutation, err := flows.Submit(ctx, form, useAPI)
		return submittedMsg{mutation: mutation, err: err}
	}
}

func (m *Model) handleSubmitted(msg submittedMsg) tea.Cmd {
	m.submitting = false
	if msg.err != nil {
		if catalog.IsValidation(msg.err) {
			return m.showMessage(msg.err.Error(), errors.MessageTypeError, errors.TimeoutValidation)
		}
		return m.showMessage(errors.Describe(errors.OpSave, msg.err), errors.MessageTypeError, errors.TimeoutSave)
	}

	m.catalog.Apply(msg.mutation)
	if msg.mutation.Kind == catalog.MutationPrepend {
		m.uiState.SetCursor(0)
	}
	if m.uiState.Screen() == ScreenForm {
		m.uiState.CloseModal()
	}
	m.uiState.ClampCursor(len(m.visible()))
	m.updateViewportContent()
	return m.showMessage(msg.mutation.Summary(), errors.MessageTypeSuccess, errors.TimeoutConfirm)
}

// deleteTarget runs the confirmed delete in the background.
func (m *Model) deleteTarget() tea.Cmd {
	id := m.uiState.Target()
	m.uiState.CloseModal()
	if id.IsZero() || m.deleting {
		return nil
	}

	m.deleting = true
	useAPI := m.catalog.UseAPI
	ctx := m.ctx
	flows := m.flows
	return func() tea.Msg {
		mutation, err := flows.Delete(ctx, id, useAPI)
		return deletedMsg{mutation: mutation, err: err}
	}
}

func (m *Model) handleDeleted(msg deletedMsg) tea.Cmd {
	m.deleting = false
	if msg.err != nil {
		return m.showMessage(errors.Describe(errors.OpDelete, msg.err), errors.MessageTypeError, errors.TimeoutDelete)
	}
	m.catalog.Apply(msg.mutation)
	m.uiState.ClampCursor(len(m.visible()))
	m.updateViewportContent()
	return m.showMessage(msg.mutation.Summary(), errors.MessageTypeSuccess, errors.TimeoutConfirm)
}

// toggleFavorite flips the selected item in the wishlist. The wishlist is
// local, so this runs inline.
func (m *Model) toggleFavorite() tea.Cmd {
	p, ok := m.selected()
	if !ok {
		return nil
	}
	_, err := m.flows.ToggleFavorite(m.catalog, p.ID.String())
	m.updateViewportContent()
	if err != nil {
		return m.showMessage(errors.Describe(errors.OpSave, err), errors.MessageTypeError, errors.TimeoutSave)
	}
	return nil
}

// toggleSource switches between the API and mock data and reloads.
func (m *Model) toggleSource() tea.Cmd {
	m.catalog.UseAPI = !m.catalog.UseAPI
	return m.startLoad()
}

// toggleLayout switches cards/compact and persists the choice.
func (m *Model) toggleLayout() tea.Cmd {
	m.settings.ToggleViewMode()
	m.updateViewportContent()
	if m.save == nil {
		return nil
	}
	snapshot := *m.settings
	save := m.save
	return func() tea.Msg {
		if err := save(&snapshot); err != nil {
			return saveSettingsFailedMsg{err: err}
		}
		return saveSettingsSuccessMsg{}
	}
}

func (m *Model) openEdit() {
	p, ok := m.selected()
	if !ok {
		return
	}
	m.uiState.OpenForm(p.ID, render.FillForm(p))
}

func (m *Model) openAdd() {
	m.uiState.OpenForm(product.ID{}, render.FormValues{})
}

func (m *Model) openDetail() {
	if p, ok := m.selected(); ok {
		m.uiState.OpenDetail(p.ID)
	}
}

func (m *Model) openConfirm() {
	if p, ok := m.selected(); ok {
		m.uiState.OpenConfirm(p.ID)
	}
}
