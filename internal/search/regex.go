package search

import (
	"regexp"
	"sync"

	"github.com/cristianoliveira/shelf/internal/product"
)

// RegexProvider matches when any field matches the query as a regular
// expression. An invalid pattern matches nothing.
type RegexProvider struct {
	opts    Options
	cacheMu sync.Mutex
	cache   map[string]*regexp.Regexp
}

func NewRegexProvider(opts ...Option) Provider {
	return &RegexProvider{
		opts:  applyOptions(opts),
		cache: make(map[string]*regexp.Regexp),
	}
}

func (p *RegexProvider) Match(item product.Product, query string) bool {
	if query == "" {
		return true
	}
	re, err := p.compile(query)
	if err != nil {
		return false
	}
	for _, v := range p.opts.fieldValues(item) {
		if re.MatchString(v) {
			return true
		}
	}
	return false
}

func (p *RegexProvider) Name() string { return ModeRegex }

// compile caches patterns; the terminal UI re-filters on every keystroke.
func (p *RegexProvider) compile(query string) (*regexp.Regexp, error) {
	p.cacheMu.Lock()
	defer p.cacheMu.Unlock()
	if re, ok := p.cache[query]; ok {
		return re, nil
	}
	pattern := query
	if p.opts.CaseInsensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	p.cache[query] = re
	return re, nil
}
