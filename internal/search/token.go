package search

import (
	"strings"

	"github.com/cristianoliveira/shelf/internal/product"
)

// TokenProvider splits the query on whitespace; every token must be found
// in at least one field.
type TokenProvider struct {
	opts Options
}

func NewTokenProvider(opts ...Option) Provider {
	return &TokenProvider{opts: applyOptions(opts)}
}

func (p *TokenProvider) Match(item product.Product, query string) bool {
	tokens := strings.Fields(p.opts.fold(query))
	if len(tokens) == 0 {
		return true
	}
	values := p.opts.fieldValues(item)
	for _, token := range tokens {
		found := false
		for _, v := range values {
			if strings.Contains(v, token) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (p *TokenProvider) Name() string { return ModeToken }
