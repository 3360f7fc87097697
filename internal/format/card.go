package format

import (
	"slices"

	"github.com/cristianoliveira/shelf/internal/product"
)

// Card content rules shared by the terminal and HTML renderers.
const (
	UntitledLabel      = "Untitled"
	ImageAltFallback   = "Product"
	PlaceholderImage   = "https://via.placeholder.com/150?text=No+Image"
	DescriptionPreview = 120
	EmptyListText      = "No products to display."
)

// Hearts shown on the favorite action.
const (
	HeartOutline = "♡"
	HeartSolid   = "♥"
)

// Card is the display form of one product.
type Card struct {
	ID          string
	Title       string
	Alt         string
	Image       string
	Price       string
	Description string
	Favorite    bool
}

// Heart returns the favorite icon for the card.
func (c Card) Heart() string {
	if c.Favorite {
		return HeartSolid
	}
	return HeartOutline
}

// CardOf applies the fallbacks and the description preview to p. Wishlist
// membership compares string ids.
func CardOf(p product.Product, wishlist []string) Card {
	c := Card{
		ID:          p.ID.String(),
		Title:       p.Title,
		Alt:         p.Title,
		Image:       p.Image,
		Price:       PriceEuro(p.Price),
		Description: Truncate(p.Description, DescriptionPreview),
		Favorite:    slices.Contains(wishlist, p.ID.String()),
	}
	if c.Title == "" {
		c.Title = UntitledLabel
		c.Alt = ImageAltFallback
	}
	if c.Image == "" {
		c.Image = PlaceholderImage
	}
	return c
}

// Truncate keeps the first n runes of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
