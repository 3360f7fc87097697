// Package format renders product lists for CLI output.
package format

import (
	"io"

	"github.com/cristianoliveira/shelf/internal/product"
)

// Formatter writes a product list. wishlist holds favorite ids.
type Formatter interface {
	FormatProducts(items []product.Product, wishlist []string, w io.Writer) error
}

// FormatterType names an output style.
type FormatterType string

const (
	// FormatterTypeSimple prints one line per product.
	FormatterTypeSimple FormatterType = "simple"
	// FormatterTypeTable prints a bordered table.
	FormatterTypeTable FormatterType = "table"
	// FormatterTypeJSON prints an indented JSON array.
	FormatterTypeJSON FormatterType = "json"
	// FormatterTypeHTML prints escaped product-card articles.
	FormatterTypeHTML FormatterType = "html"
)

// Types lists the supported formatter names.
func Types() []FormatterType {
	return []FormatterType{FormatterTypeSimple, FormatterTypeTable, FormatterTypeJSON, FormatterTypeHTML}
}

// NewFormatter returns the formatter for t, defaulting to simple.
func NewFormatter(t FormatterType) Formatter {
	switch t {
	case FormatterTypeTable:
		return NewTableFormatter()
	case FormatterTypeJSON:
		return NewJSONFormatter()
	case FormatterTypeHTML:
		return NewHTMLFormatter()
	default:
		return NewSimpleFormatter()
	}
}
