// Package search filters products by a free-text query. Several matching
// strategies share the Provider interface so the CLI and the terminal UI
// filter the same way.
package search

import (
	"strings"

	"github.com/cristianoliveira/shelf/internal/product"
)

// Provider matches one product against a query.
type Provider interface {
	// Match reports whether p matches query. An empty query matches everything.
	Match(p product.Product, query string) bool
	Name() string
}

// Searchable fields.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldID          = "id"
)

// Options configures providers.
type Options struct {
	CaseInsensitive bool
	Fields          []string
}

// DefaultOptions searches title and description ignoring case.
func DefaultOptions() Options {
	return Options{
		CaseInsensitive: true,
		Fields:          []string{FieldTitle, FieldDescription},
	}
}

// Option modifies Options.
type Option func(*Options)

// WithCaseInsensitive toggles case folding.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *Options) { o.CaseInsensitive = enabled }
}

// WithFields sets the fields to search: "title", "description", "id".
func WithFields(fields ...string) Option {
	return func(o *Options) { o.Fields = fields }
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// fieldValues returns the non-empty configured fields of p, folded when
// the options ask for it.
func (o Options) fieldValues(p product.Product) []string {
	values := make([]string, 0, len(o.Fields))
	for _, field := range o.Fields {
		var v string
		switch field {
		case FieldTitle:
			v = p.Title
		case FieldDescription:
			v = p.Description
		case FieldID:
			v = p.ID.String()
		}
		if v == "" {
			continue
		}
		if o.CaseInsensitive {
			v = strings.ToLower(v)
		}
		values = append(values, v)
	}
	return values
}

func (o Options) fold(s string) string {
	if o.CaseInsensitive {
		return strings.ToLower(s)
	}
	return s
}

// Modes accepted by New.
const (
	ModeSubstring = "substring"
	ModeToken     = "token"
	ModeRegex     = "regex"
)

// New returns the provider for mode, defaulting to substring.
func New(mode string, opts ...Option) Provider {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ModeToken:
		return NewTokenProvider(opts...)
	case ModeRegex:
		return NewRegexProvider(opts...)
	default:
		return NewSubstringProvider(opts...)
	}
}

// Filter returns the items matching the trimmed query, in order. The input
// slice is not modified.
func Filter(provider Provider, items []product.Product, query string) []product.Product {
	query = strings.TrimSpace(query)
	out := make([]product.Product, 0, len(items))
	for _, p := range items {
		if query == "" || provider.Match(p, query) {
			out = append(out, p)
		}
	}
	return out
}
