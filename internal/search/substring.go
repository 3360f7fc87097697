package search

import (
	"strings"

	"github.com/cristianoliveira/shelf/internal/product"
)

// SubstringProvider matches when any field contains the query.
type SubstringProvider struct {
	opts Options
}

func NewSubstringProvider(opts ...Option) Provider {
	return &SubstringProvider{opts: applyOptions(opts)}
}

func (p *SubstringProvider) Match(item product.Product, query string) bool {
	if query == "" {
		return true
	}
	q := p.opts.fold(query)
	for _, v := range p.opts.fieldValues(item) {
		if strings.Contains(v, q) {
			return true
		}
	}
	return false
}

func (p *SubstringProvider) Name() string { return ModeSubstring }
