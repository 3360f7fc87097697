// Package product defines the catalog item model shared by the remote
// client, the local flows and the renderers.
package product

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Product is one catalog item. Extra fields sent by the remote service
// (category, rating) are ignored.
type Product struct {
	ID          ID      `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// Price decodes a JSON number or numeric string.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("product price %q: %w", s, err)
		}
		*p = Price(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("product price: %w", err)
	}
	*p = Price(f)
	return nil
}

func (p *Product) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          ID     `json:"id"`
		Title       string `json:"title"`
		Price       Price  `json:"price"`
		Description string `json:"description"`
		Image       string `json:"image"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Product{
		ID:          raw.ID,
		Title:       raw.Title,
		Price:       float64(raw.Price),
		Description: raw.Description,
		Image:       raw.Image,
	}
	return nil
}

// Patch is a partial product as echoed by create and update calls.
// Nil fields are absent.
type Patch struct {
	ID          *ID     `json:"id,omitempty"`
	Title       *string `json:"title,omitempty"`
	Price       *Price  `json:"price,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
}

// Merge overwrites the fields present in patch. The id is never replaced.
func (p Product) Merge(patch Patch) Product {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Price != nil {
		p.Price = float64(*patch.Price)
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	return p
}

// Product builds a new item from the patch, using fallback when the patch
// carries no id.
func (patch Patch) Product(fallback ID) Product {
	id := fallback
	if patch.ID != nil && !patch.ID.IsZero() {
		id = *patch.ID
	}
	return Product{ID: id}.Merge(patch)
}

// Payload is the body sent on create and update.
type Payload struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// Patch returns the payload with every field present.
func (p Payload) Patch() Patch {
	price := Price(p.Price)
	return Patch{
		Title:       &p.Title,
		Price:       &price,
		Description: &p.Description,
		Image:       &p.Image,
	}
}

// Index returns the position of the product whose id matches, or -1.
func Index(items []Product, id string) int {
	for i := range items {
		if items[i].ID.Matches(id) {
			return i
		}
	}
	return -1
}

// Mock returns the local fallback catalog.
func Mock() []Product {
	return []Product{
		{ID: LocalID("1"), Title: "Produit local A", Price: 9.9, Description: "Produit local A"},
		{ID: LocalID("2"), Title: "Produit local B", Price: 19.99, Description: "Produit local B"},
	}
}
