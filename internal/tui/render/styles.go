package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/shelf/internal/colors"
)

var (
	accent = lipgloss.Color(ansiColorNumber(colors.Blue))
	muted  = lipgloss.Color("241")

	titleStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(muted)
	priceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Green)))
	heartStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Red)))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	selectedStyle = lipgloss.NewStyle().Background(accent).Foreground(lipgloss.Color("0"))

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderLeft(true).
			BorderForeground(lipgloss.Color("236")).
			PaddingLeft(1)
	selectedCardStyle = cardStyle.BorderForeground(accent)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1)

	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ansiColorNumber(colors.Red)))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ansiColorNumber(colors.Green)))
)

// ansiColorNumber extracts the color number from an ANSI escape sequence.
// Example: "\033[0;34m" -> "34"
func ansiColorNumber(ansi string) string {
	if len(ansi) < 2 {
		return ""
	}
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 {
		return ""
	}
	return ansi[lastSemicolon+1 : len(ansi)-1]
}
