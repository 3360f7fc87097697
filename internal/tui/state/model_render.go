package state

import (
	"strings"

	"github.com/cristianoliveira/shelf/internal/tui/render"
)

// View renders the TUI: header, body, status line and footer.
func (m *Model) View() string {
	var b strings.Builder
	items := m.visible()

	b.WriteString(render.Header(render.HeaderState{
		UseAPI:  m.catalog.UseAPI,
		Shown:   len(items),
		Total:   len(m.catalog.Items),
		Compact: m.settings.Compact(),
	}))
	b.WriteString("\n")
	b.WriteString(m.body())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(render.Footer(render.FooterState{
		SearchMode:  m.uiState.IsSearchMode(),
		SearchQuery: m.uiState.GetSearchQuery(),
		Bindings:    m.keys.ShortHelp(),
	}))
	return b.String()
}

func (m *Model) body() string {
	width := m.uiState.GetWidth()
	switch m.uiState.Screen() {
	case ScreenDetail:
		if p, ok := m.catalog.Find(m.uiState.Target().String()); ok {
			return render.Detail(p, width)
		}
	case ScreenForm:
		values, focus, _ := m.uiState.Form()
		return render.Form(render.FormState{Values: values, Focus: focus, Width: width})
	}
	return m.uiState.GetViewport().View()
}

func (m *Model) statusLine() string {
	if m.uiState.Screen() == ScreenConfirm {
		if p, ok := m.catalog.Find(m.uiState.Target().String()); ok {
			title := p.Title
			if title == "" {
				title = p.ID.String()
			}
			return render.Confirm("Delete " + title + "?")
		}
	}
	msg, ok := m.messages.Current()
	if !ok {
		return ""
	}
	return render.Message(msg.Text, msg.Type)
}

// updateViewportContent re-renders the list into the viewport and scrolls
// so the cursor stays visible.
func (m *Model) updateViewportContent() {
	items := m.visible()
	compact := m.settings.Compact()
	vp := m.uiState.GetViewport()
	vp.SetContent(render.List(render.ListState{
		Items:    items,
		Wishlist: m.catalog.Wishlist,
		Cursor:   m.uiState.GetCursor(),
		Width:    m.uiState.GetWidth(),
		Compact:  compact,
	}))

	lines := render.LinesPerItem(compact)
	top := m.uiState.GetCursor() * lines
	bottom := top + lines
	switch {
	case top < vp.YOffset:
		vp.SetYOffset(top)
	case bottom > vp.YOffset+vp.Height:
		vp.SetYOffset(bottom - vp.Height)
	}
}
