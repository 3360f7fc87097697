package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/cristianoliveira/shelf/internal/errors"
)

// HeaderState defines the inputs needed to render the title bar.
type HeaderState struct {
	UseAPI  bool
	Shown   int
	Total   int
	Compact bool
}

// Header renders the title bar with the data source and item counts.
func Header(state HeaderState) string {
	source := "API"
	if !state.UseAPI {
		source = "mock"
	}
	mode := "cards"
	if state.Compact {
		mode = "compact"
	}
	count := fmt.Sprintf("%d products", state.Total)
	if state.Shown != state.Total {
		count = fmt.Sprintf("%d of %d products", state.Shown, state.Total)
	}
	return headerStyle.Render("shelf") + mutedStyle.Render(fmt.Sprintf("  source: %s  |  %s  |  %s", source, count, mode))
}

// FooterState defines the inputs needed to render footer help text.
type FooterState struct {
	SearchMode  bool
	SearchQuery string
	Bindings    []key.Binding
}

// Footer renders the search prompt or the key help line.
func Footer(state FooterState) string {
	if state.SearchMode {
		return headerStyle.Render("Search: ") + state.SearchQuery + "_" + mutedStyle.Render("  (enter: keep  esc: clear)")
	}
	help := make([]string, 0, len(state.Bindings))
	for _, b := range state.Bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		help = append(help, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	footer := mutedStyle.Render(strings.Join(help, "  |  "))
	if state.SearchQuery != "" {
		footer = mutedStyle.Render("filter: "+state.SearchQuery+"  |  ") + footer
	}
	return footer
}

// Message renders a status line. Errors use the error style; every other
// type uses the success style.
func Message(text string, typ errors.MessageType) string {
	if text == "" {
		return ""
	}
	if typ.IsError() {
		return errorStyle.Render(text)
	}
	return successStyle.Render(text)
}

// Confirm renders a y/N question.
func Confirm(question string) string {
	return errorStyle.Render(question + " (y/N)")
}
