package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cristianoliveira/shelf/internal/product"
)

// SimpleFormatter prints id, title, price and heart on one line.
type SimpleFormatter struct{}

func NewSimpleFormatter() *SimpleFormatter {
	return &SimpleFormatter{}
}

func (f *SimpleFormatter) FormatProducts(items []product.Product, wishlist []string, w io.Writer) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, EmptyListText)
		return err
	}
	for _, p := range items {
		c := CardOf(p, wishlist)
		title := c.Title
		if len([]rune(title)) > 40 {
			title = Truncate(title, 37) + "..."
		}
		if _, err := fmt.Fprintf(w, "%-14s  %-40s  %12s  %s\n", c.ID, title, c.Price, c.Heart()); err != nil {
			return err
		}
	}
	return nil
}

// JSONFormatter prints the products with a favorite flag.
type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

type jsonProduct struct {
	product.Product
	Local    bool `json:"local"`
	Favorite bool `json:"favorite"`
}

func (f *JSONFormatter) FormatProducts(items []product.Product, wishlist []string, w io.Writer) error {
	out := make([]jsonProduct, 0, len(items))
	for _, p := range items {
		out = append(out, jsonProduct{
			Product:  p,
			Local:    p.ID.Origin() == product.OriginLocal,
			Favorite: CardOf(p, wishlist).Favorite,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
