package state

import (
	"testing"

	"github.com/cristianoliveira/shelf/internal/product"
	"github.com/cristianoliveira/shelf/internal/tui/render"
	"github.com/stretchr/testify/assert"
)

func TestNewUIStateDefaults(t *testing.T) {
	u := NewUIState()
	assert.Equal(t, defaultViewportWidth, u.GetWidth())
	assert.Equal(t, defaultViewportHeight, u.GetHeight())
	assert.Equal(t, ScreenList, u.Screen())
	assert.False(t, u.IsSearchMode())
}

func TestUIStateSizeFallsBackToDefaults(t *testing.T) {
	u := NewUIState()
	u.SetWidth(0)
	u.SetHeight(-1)
	assert.Equal(t, defaultViewportWidth, u.GetWidth())
	assert.Equal(t, defaultViewportHeight, u.GetHeight())

	u.SetHeight(2)
	u.UpdateViewportSize()
	assert.Equal(t, 1, u.GetViewport().Height)
}

func TestUIStateCursorClamp(t *testing.T) {
	u := NewUIState()
	u.SetCursor(-3)
	assert.Equal(t, 0, u.GetCursor())
	u.SetCursor(7)
	u.ClampCursor(3)
	assert.Equal(t, 2, u.GetCursor())
	u.ClampCursor(0)
	assert.Equal(t, 0, u.GetCursor())
}

func TestUIStateSearchQuery(t *testing.T) {
	u := NewUIState()
	u.SetSearchMode(true)
	u.AppendToSearchQuery([]rune("café")...)
	u.BackspaceSearchQuery()
	assert.Equal(t, "caf", u.GetSearchQuery())

	u.SetSearchMode(false)
	assert.Equal(t, "caf", u.GetSearchQuery())
	u.ClearSearch()
	assert.Equal(t, "", u.GetSearchQuery())
}

func TestUIStateFormFocusWraps(t *testing.T) {
	u := NewUIState()
	u.OpenForm(product.RemoteID("4"), render.FormValues{ID: "4", Name: "Mug"})
	_, focus, target := u.Form()
	assert.Equal(t, render.FieldName, focus)
	assert.Equal(t, "4", target.String())

	for range render.FormFields {
		u.FormFocusNext(1)
	}
	_, focus, _ = u.Form()
	assert.Equal(t, render.FieldName, focus)

	u.FormFocusNext(-1)
	u.FormBackspace()
	values, focus, _ := u.Form()
	assert.Equal(t, render.FieldImage, focus)
	assert.Equal(t, "Mug", values.Name)

	u.CloseModal()
	values, _, target = u.Form()
	assert.Equal(t, render.FormValues{}, values)
	assert.True(t, target.IsZero())
}
