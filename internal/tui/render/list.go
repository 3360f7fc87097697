package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/shelf/internal/format"
	"github.com/cristianoliveira/shelf/internal/product"
)

const (
	// cardLines is the height of one rendered card including its trailing
	// blank line.
	cardLines    = 6
	compactLines = 1

	compactPriceWidth = 12
	minTitleWidth     = 10
)

// ListState defines the inputs needed to render the product list.
type ListState struct {
	Items    []product.Product
	Wishlist []string
	Cursor   int
	Width    int
	Compact  bool
}

// LinesPerItem returns how many terminal lines one list entry occupies.
func LinesPerItem(compact bool) int {
	if compact {
		return compactLines
	}
	return cardLines
}

// List renders every item in order, or the empty placeholder.
func List(state ListState) string {
	if len(state.Items) == 0 {
		return mutedStyle.Render(format.EmptyListText)
	}

	rows := make([]string, 0, len(state.Items))
	for i, p := range state.Items {
		c := format.CardOf(p, state.Wishlist)
		selected := i == state.Cursor
		if state.Compact {
			rows = append(rows, CompactRow(c, state.Width, selected))
			continue
		}
		rows = append(rows, Card(c, state.Width, selected))
	}
	if state.Compact {
		return strings.Join(rows, "\n")
	}
	return strings.Join(rows, "\n\n")
}

// Card renders one product card: title, image, price, description and the
// view/edit/delete/favorite actions.
func Card(c format.Card, width int, selected bool) string {
	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	if width > 0 {
		style = style.MaxWidth(width)
	}

	lines := []string{
		titleStyle.Render(c.Title),
		mutedStyle.Render(c.Image),
		priceStyle.Render(c.Price),
		c.Description,
		actions(c),
	}
	return style.Render(strings.Join(lines, "\n"))
}

func actions(c format.Card) string {
	return fmt.Sprintf("%s view  %s edit  %s delete  %s %s",
		headerStyle.Render("v"),
		headerStyle.Render("e"),
		headerStyle.Render("d"),
		headerStyle.Render("f"),
		heartStyle.Render(c.Heart()),
	)
}

// CompactRow renders a product as a single line.
func CompactRow(c format.Card, width int, selected bool) string {
	titleWidth := width - compactPriceWidth - len(c.ID) - 8
	if titleWidth < minTitleWidth {
		titleWidth = minTitleWidth
	}
	title := format.Truncate(c.Title, titleWidth)

	row := fmt.Sprintf("%s  %-*s  %*s  %s",
		c.Heart(),
		titleWidth, title,
		compactPriceWidth, c.Price,
		c.ID,
	)
	style := lipgloss.NewStyle()
	if selected {
		style = selectedStyle
	}
	if width > 0 {
		style = style.MaxWidth(width)
	}
	return style.Render(row)
}
