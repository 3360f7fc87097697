package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/cristianoliveira/shelf/internal/errors"
	"github.com/cristianoliveira/shelf/internal/format"
	"github.com/cristianoliveira/shelf/internal/product"
	"github.com/stretchr/testify/assert"
)

func sampleItems() []product.Product {
	return []product.Product{
		{ID: product.RemoteID("1"), Title: "Backpack", Price: 109.95, Description: "Fits a laptop", Image: "https://img/1.png"},
		{ID: product.LocalID("c42"), Title: "", Price: 9.9, Description: strings.Repeat("x", 200)},
	}
}

func TestListEmptyShowsPlaceholder(t *testing.T) {
	out := List(ListState{Width: 80})
	assert.Contains(t, out, format.EmptyListText)
}

func TestListRendersCardsInOrder(t *testing.T) {
	out := List(ListState{Items: sampleItems(), Wishlist: []string{"1"}, Width: 200})

	first := strings.Index(out, "Backpack")
	second := strings.Index(out, format.UntitledLabel)
	assert.True(t, first >= 0 && second > first, "cards out of order:\n%s", out)
	assert.Contains(t, out, format.PriceEuro(109.95))
	assert.Contains(t, out, format.PriceEuro(9.9))
	assert.Contains(t, out, format.PlaceholderImage)
	assert.Contains(t, out, strings.Repeat("x", format.DescriptionPreview))
	assert.NotContains(t, out, strings.Repeat("x", format.DescriptionPreview+1))
	assert.Equal(t, 1, strings.Count(out, format.HeartSolid))
	assert.Equal(t, 1, strings.Count(out, format.HeartOutline))
	for _, action := range []string{"view", "edit", "delete"} {
		assert.Equal(t, 2, strings.Count(out, action))
	}
}

func TestListCardHeightMatchesLinesPerItem(t *testing.T) {
	out := List(ListState{Items: sampleItems(), Width: 200})
	lines := strings.Count(out, "\n") + 1
	assert.Equal(t, len(sampleItems())*LinesPerItem(false)-1, lines)

	compact := List(ListState{Items: sampleItems(), Width: 200, Compact: true})
	assert.Equal(t, len(sampleItems())*LinesPerItem(true), strings.Count(compact, "\n")+1)
}

func TestCompactRow(t *testing.T) {
	c := format.CardOf(sampleItems()[0], []string{"1"})
	row := CompactRow(c, 80, false)
	assert.Contains(t, row, format.HeartSolid)
	assert.Contains(t, row, "Backpack")
	assert.Contains(t, row, "109,95")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(row), "1"))
}

func TestDetailSanitizesValues(t *testing.T) {
	p := product.Product{ID: product.RemoteID("3"), Title: `<b>Tom & "Jerry"</b>`, Description: "it's", Price: 1234.5, Image: "a<b"}
	out := Detail(p, 120)

	assert.Contains(t, out, DetailTitle)
	assert.Contains(t, out, "&lt;b&gt;Tom &amp; &quot;Jerry&quot;&lt;/b&gt;")
	assert.Contains(t, out, "it&#39;s")
	assert.Contains(t, out, format.PriceEuro(1234.5))
	assert.Contains(t, out, "a&lt;b")
	assert.NotContains(t, out, "<b>")
}

func TestFillForm(t *testing.T) {
	v := FillForm(product.Product{ID: product.RemoteID("7"), Title: "Lamp", Price: 12.5, Description: "warm", Image: "i.png"})
	assert.Equal(t, FormValues{ID: "7", Name: "Lamp", Price: "12.5", Description: "warm", Image: "i.png"}, v)

	empty := FillForm(product.Product{})
	assert.Equal(t, FormValues{}, empty)
}

func TestFormValuesGetSet(t *testing.T) {
	var v FormValues
	for _, f := range FormFields {
		v.Set(f, f.String()+"!")
	}
	for _, f := range FormFields {
		assert.Equal(t, f.String()+"!", v.Get(f))
	}
	assert.Equal(t, "", v.ID)
}

func TestFormTitles(t *testing.T) {
	add := Form(FormState{Focus: FieldName})
	assert.Contains(t, add, FormTitleAdd)
	assert.NotContains(t, add, "ID")

	edit := Form(FormState{Values: FormValues{ID: "c1", Name: "Chair"}, Focus: FieldPrice})
	assert.Contains(t, edit, FormTitleEdit)
	assert.Contains(t, edit, "c1")
	assert.Contains(t, edit, "Chair")
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", Message("", errors.MessageTypeError))
	assert.Contains(t, Message("Done", errors.MessageTypeSuccess), "Done")
	assert.Contains(t, Message("Error loading: x", errors.MessageTypeError), "Error loading: x")
}

func TestHeader(t *testing.T) {
	assert.Contains(t, Header(HeaderState{UseAPI: true, Shown: 3, Total: 3}), "source: API")
	out := Header(HeaderState{UseAPI: false, Shown: 1, Total: 3, Compact: true})
	assert.Contains(t, out, "source: mock")
	assert.Contains(t, out, "1 of 3 products")
	assert.Contains(t, out, "compact")
}

func TestFooter(t *testing.T) {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"), key.WithDisabled()),
	}
	out := Footer(FooterState{Bindings: bindings})
	assert.Contains(t, out, "q: quit")
	assert.NotContains(t, out, "hidden")

	search := Footer(FooterState{SearchMode: true, SearchQuery: "bag"})
	assert.Contains(t, search, "Search: bag_")

	filtered := Footer(FooterState{SearchQuery: "bag", Bindings: bindings})
	assert.Contains(t, filtered, "filter: bag")
}

func TestAnsiColorNumber(t *testing.T) {
	assert.Equal(t, "34", ansiColorNumber("\033[0;34m"))
	assert.Equal(t, "", ansiColorNumber("x"))
}
