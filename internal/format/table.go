package format

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cristianoliveira/shelf/internal/product"
)

// TableFormatter prints a bordered table with a header row.
type TableFormatter struct {
	// TitleWidth caps the title column, in runes.
	TitleWidth int
}

func NewTableFormatter() *TableFormatter {
	return &TableFormatter{TitleWidth: 32}
}

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	tablePriceStyle  = tableCellStyle.Align(lipgloss.Right)
)

const tablePriceColumn = 2

func (f *TableFormatter) FormatProducts(items []product.Product, wishlist []string, w io.Writer) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, EmptyListText)
		return err
	}
	rows := make([][]string, 0, len(items))
	for _, p := range items {
		c := CardOf(p, wishlist)
		title := c.Title
		if f.TitleWidth > 3 && len([]rune(title)) > f.TitleWidth {
			title = Truncate(title, f.TitleWidth-3) + "..."
		}
		rows = append(rows, []string{c.ID, title, c.Price, c.Heart()})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "PRICE", "FAV").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case col == tablePriceColumn:
				return tablePriceStyle
			default:
				return tableCellStyle
			}
		})
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
