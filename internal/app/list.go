package app

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/cristianoliveira/shelf/internal/colors"
	"github.com/cristianoliveira/shelf/internal/errors"
	"github.com/cristianoliveira/shelf/internal/format"
	"github.com/cristianoliveira/shelf/internal/product"
	"github.com/cristianoliveira/shelf/internal/search"
)

// ListOptions holds the list command inputs after flag parsing.
type ListOptions struct {
	UseAPI         bool
	Search         string
	SearchProvider search.Provider
	Format         string
	// FavoritesOnly keeps the items present in the wishlist.
	FavoritesOnly bool
}

// ListUseCase prints the catalog.
type ListUseCase struct {
	client CatalogClient
}

// NewListUseCase creates a new list use-case.
func NewListUseCase(client CatalogClient) *ListUseCase {
	if client == nil {
		panic("NewListUseCase: client dependency cannot be nil")
	}
	return &ListUseCase{client: client}
}

// Execute loads the catalog and writes it with the requested formatter. A
// load failure is reported as a warning and the fallback data is printed.
func (u *ListUseCase) Execute(ctx context.Context, opts ListOptions, w io.Writer) error {
	if err := ValidateFormat(opts.Format); err != nil {
		return err
	}

	st, err := loadState(ctx, u.client, opts.UseAPI)
	if err != nil {
		colors.Warning(errors.Describe(errors.OpLoad, err))
	}

	provider := opts.SearchProvider
	if provider == nil {
		provider = search.NewSubstringProvider()
	}
	items := st.Filter(provider, opts.Search)
	if opts.FavoritesOnly {
		items = slices.DeleteFunc(slices.Clone(items), func(p product.Product) bool {
			return !st.IsFavorite(p.ID.String())
		})
	}

	formatter := format.NewFormatter(format.FormatterType(opts.Format))
	if err := formatter.FormatProducts(items, st.Wishlist, w); err != nil {
		return fmt.Errorf("list: write output: %w", err)
	}
	return nil
}

// ValidateFormat accepts an empty name or one of format.Types.
func ValidateFormat(name string) error {
	if name == "" {
		return nil
	}
	for _, t := range format.Types() {
		if string(t) == name {
			return nil
		}
	}
	return fmt.Errorf("list: unknown format %q (expected one of %v)", name, format.Types())
}
