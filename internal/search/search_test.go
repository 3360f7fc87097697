package search

import (
	"testing"

	"github.com/cristianoliveira/shelf/internal/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() []product.Product {
	return []product.Product{
		{ID: product.RemoteID("1"), Title: "Mens Casual Slim Fit", Description: "The color could be slightly different"},
		{ID: product.RemoteID("2"), Title: "Solid Gold Petite Micropave", Description: "Satisfaction Guaranteed"},
		{ID: product.LocalID("c9"), Title: "", Description: "no title here"},
	}
}

func TestSubstringProvider(t *testing.T) {
	p := NewSubstringProvider()
	items := catalog()

	assert.True(t, p.Match(items[0], "SLIM"))
	assert.True(t, p.Match(items[1], "guaranteed"))
	assert.False(t, p.Match(items[0], "gold"))
	assert.True(t, p.Match(items[2], ""))
	assert.Equal(t, ModeSubstring, p.Name())

	strict := NewSubstringProvider(WithCaseInsensitive(false))
	assert.False(t, strict.Match(items[0], "SLIM"))
	assert.True(t, strict.Match(items[0], "Slim"))
}

func TestFieldsOption(t *testing.T) {
	items := catalog()
	titleOnly := NewSubstringProvider(WithFields(FieldTitle))
	assert.False(t, titleOnly.Match(items[1], "satisfaction"))

	byID := NewSubstringProvider(WithFields(FieldID))
	assert.True(t, byID.Match(items[2], "c9"))
}

func TestTokenProvider(t *testing.T) {
	p := NewTokenProvider()
	items := catalog()

	assert.True(t, p.Match(items[0], "slim color"), "tokens may match different fields")
	assert.False(t, p.Match(items[0], "slim gold"))
	assert.True(t, p.Match(items[1], "   "))
	assert.Equal(t, ModeToken, p.Name())
}

func TestRegexProvider(t *testing.T) {
	p := NewRegexProvider()
	items := catalog()

	assert.True(t, p.Match(items[0], `^mens\s`))
	assert.False(t, p.Match(items[1], `^mens`))
	assert.False(t, p.Match(items[0], `(`), "invalid pattern matches nothing")
	assert.True(t, p.Match(items[0], `^mens\s`), "cached pattern")
	assert.Equal(t, ModeRegex, p.Name())
}

func TestNew(t *testing.T) {
	assert.IsType(t, &SubstringProvider{}, New(""))
	assert.IsType(t, &TokenProvider{}, New("Token"))
	assert.IsType(t, &RegexProvider{}, New("regex"))
	assert.IsType(t, &SubstringProvider{}, New("fuzzy"))
}

func TestFilterKeepsCanonicalList(t *testing.T) {
	items := product.Mock()
	filtered := Filter(NewSubstringProvider(), items, "  LOCAL ")
	require.Len(t, filtered, 2)

	filtered = Filter(NewSubstringProvider(), items, "produit local b")
	require.Len(t, filtered, 1)
	assert.Equal(t, "2", filtered[0].ID.String())
	assert.Len(t, items, 2)

	assert.Len(t, Filter(NewSubstringProvider(), items, ""), 2)
	assert.Empty(t, Filter(NewSubstringProvider(), items, "zzz"))
}
