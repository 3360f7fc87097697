package state

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/cristianoliveira/shelf/internal/product"
	"github.com/cristianoliveira/shelf/internal/tui/render"
)

// Screen is what the body of the TUI currently shows.
type Screen int

const (
	ScreenList Screen = iota
	ScreenDetail
	ScreenForm
	ScreenConfirm
)

// UIState manages all UI-specific state for the TUI: viewport, cursor,
// search input, the open modal and its inputs.
type UIState struct {
	viewport viewport.Model
	width    int
	height   int

	cursor int

	searchMode  bool
	searchQuery string

	screen Screen

	// detail and confirm target
	target product.ID

	form       render.FormValues
	formTarget product.ID
	formFocus  render.Field
}

// NewUIState creates a new UIState instance with default values.
func NewUIState() *UIState {
	return &UIState{
		viewport: viewport.New(defaultViewportWidth, defaultViewportHeight-headerFooterLines),
		width:    defaultViewportWidth,
		height:   defaultViewportHeight,
	}
}

// GetViewport returns the current viewport model.
func (u *UIState) GetViewport() *viewport.Model {
	return &u.viewport
}

// GetWidth returns the current width of the UI.
func (u *UIState) GetWidth() int {
	return u.width
}

// SetWidth updates the width of the UI.
func (u *UIState) SetWidth(width int) {
	u.width = width
	if width <= 0 {
		u.width = defaultViewportWidth
	}
}

// GetHeight returns the current height of the UI.
func (u *UIState) GetHeight() int {
	return u.height
}

// SetHeight updates the height of the UI.
func (u *UIState) SetHeight(height int) {
	u.height = height
	if height <= 0 {
		u.height = defaultViewportHeight
	}
}

// UpdateViewportSize updates the viewport dimensions based on the current width and height.
func (u *UIState) UpdateViewportSize() {
	viewportHeight := u.height - headerFooterLines
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	u.viewport = viewport.New(u.width, viewportHeight)
}

// GetCursor returns the current cursor position.
func (u *UIState) GetCursor() int {
	return u.cursor
}

// SetCursor updates the cursor position.
func (u *UIState) SetCursor(cursor int) {
	u.cursor = cursor
	if u.cursor < 0 {
		u.cursor = 0
	}
}

// ClampCursor keeps the cursor inside a list of n items.
func (u *UIState) ClampCursor(n int) {
	if u.cursor >= n {
		u.cursor = n - 1
	}
	if u.cursor < 0 {
		u.cursor = 0
	}
}

// IsSearchMode returns whether the search input has focus.
func (u *UIState) IsSearchMode() bool {
	return u.searchMode
}

// SetSearchMode gives or takes focus from the search input. The query is
// kept; ClearSearch drops it.
func (u *UIState) SetSearchMode(active bool) {
	u.searchMode = active
}

// ClearSearch leaves search mode and drops the query.
func (u *UIState) ClearSearch() {
	u.searchMode = false
	u.searchQuery = ""
}

// GetSearchQuery returns the current search query.
func (u *UIState) GetSearchQuery() string {
	return u.searchQuery
}

// AppendToSearchQuery appends runes to the search query.
func (u *UIState) AppendToSearchQuery(r ...rune) {
	u.searchQuery += string(r)
}

// BackspaceSearchQuery removes the last rune of the search query.
func (u *UIState) BackspaceSearchQuery() {
	u.searchQuery = dropLastRune(u.searchQuery)
}

// Screen returns what the body currently shows.
func (u *UIState) Screen() Screen {
	return u.screen
}

// OpenDetail shows the detail modal for id.
func (u *UIState) OpenDetail(id product.ID) {
	u.screen = ScreenDetail
	u.target = id
}

// OpenConfirm asks to delete id.
func (u *UIState) OpenConfirm(id product.ID) {
	u.screen = ScreenConfirm
	u.target = id
}

// Target returns the id the detail or confirm screen refers to.
func (u *UIState) Target() product.ID {
	return u.target
}

// OpenForm shows the edit modal. A zero id opens it for a new product.
func (u *UIState) OpenForm(id product.ID, values render.FormValues) {
	u.screen = ScreenForm
	u.formTarget = id
	u.form = values
	u.formFocus = render.FieldName
}

// Form returns the form modal values, focus and target id.
func (u *UIState) Form() (render.FormValues, render.Field, product.ID) {
	return u.form, u.formFocus, u.formTarget
}

// FormInput appends text to the focused field.
func (u *UIState) FormInput(r ...rune) {
	u.form.Set(u.formFocus, u.form.Get(u.formFocus)+string(r))
}

// FormBackspace removes the last rune of the focused field.
func (u *UIState) FormBackspace() {
	u.form.Set(u.formFocus, dropLastRune(u.form.Get(u.formFocus)))
}

// FormFocusNext moves focus forward (delta 1) or backward (delta -1),
// wrapping around.
func (u *UIState) FormFocusNext(delta int) {
	n := len(render.FormFields)
	u.formFocus = render.FormFields[((int(u.formFocus)+delta)%n+n)%n]
}

// CloseModal returns to the list.
func (u *UIState) CloseModal() {
	u.screen = ScreenList
	u.target = product.ID{}
	u.formTarget = product.ID{}
	u.form = render.FormValues{}
}

func dropLastRune(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}
