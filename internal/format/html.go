package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/shelf/internal/input"
	"github.com/cristianoliveira/shelf/internal/product"
)

// HTMLFormatter prints product-card articles. Every interpolated value goes
// through input.Sanitize.
type HTMLFormatter struct{}

func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

var cardActions = []struct{ action, label string }{
	{"view", "View"},
	{"edit", "Edit"},
	{"delete", "Delete"},
}

func (f *HTMLFormatter) FormatProducts(items []product.Product, wishlist []string, w io.Writer) error {
	if len(items) == 0 {
		_, err := fmt.Fprintf(w, "<p class=\"small\">%s</p>\n", input.Sanitize(EmptyListText))
		return err
	}
	var b strings.Builder
	for _, p := range items {
		writeHTMLCard(&b, CardOf(p, wishlist))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeHTMLCard(b *strings.Builder, c Card) {
	esc := input.Sanitize
	fmt.Fprintf(b, "<article class=\"product-card\" data-id=\"%s\">\n", esc(c.ID))
	fmt.Fprintf(b, "  <h2 class=\"product-title\">%s</h2>\n", esc(c.Title))
	fmt.Fprintf(b, "  <img src=\"%s\" alt=\"%s\">\n", esc(c.Image), esc(c.Alt))
	fmt.Fprintf(b, "  <p class=\"product-price\">%s</p>\n", esc(c.Price))
	fmt.Fprintf(b, "  <div class=\"small\">%s</div>\n", esc(c.Description))
	b.WriteString("  <div class=\"card-actions\">\n")
	for _, a := range cardActions {
		fmt.Fprintf(b, "    <button type=\"button\" data-action=\"%s\">%s</button>\n", a.action, a.label)
	}
	fmt.Fprintf(b, "    <button type=\"button\" data-action=\"favorite\" aria-pressed=\"%t\">%s</button>\n", c.Favorite, c.Heart())
	b.WriteString("  </div>\n</article>\n")
}
