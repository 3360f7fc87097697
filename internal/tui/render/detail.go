package render

import (
	"strings"

	"github.com/cristianoliveira/shelf/internal/format"
	"github.com/cristianoliveira/shelf/internal/input"
	"github.com/cristianoliveira/shelf/internal/product"
)

// DetailTitle heads the product detail modal.
const DetailTitle = "Product details"

// Detail renders the detail modal for p. Every value goes through
// input.Sanitize before display.
func Detail(p product.Product, width int) string {
	lines := []string{
		headerStyle.Render(DetailTitle),
		"",
		titleStyle.Render(input.Sanitize(p.Title)),
		input.Sanitize(p.Description),
		priceStyle.Render(input.Sanitize(format.PriceEuro(p.Price))),
		mutedStyle.Render(input.Sanitize(p.Image)),
		"",
		mutedStyle.Render("esc: close"),
	}
	style := modalStyle
	if width > 4 {
		style = style.Width(width - 4)
	}
	return style.Render(strings.Join(lines, "\n"))
}
