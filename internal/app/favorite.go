package app

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/cristianoliveira/shelf/internal/catalog"
	"github.com/cristianoliveira/shelf/internal/colors"
	"github.com/cristianoliveira/shelf/internal/errors"
	"github.com/cristianoliveira/shelf/internal/format"
	"github.com/cristianoliveira/shelf/internal/wishlist"
)

// FavoriteUseCase toggles wishlist membership.
type FavoriteUseCase struct {
	client CatalogClient
}

// NewFavoriteUseCase creates a new favorite use-case.
func NewFavoriteUseCase(client CatalogClient) *FavoriteUseCase {
	if client == nil {
		panic("NewFavoriteUseCase: client dependency cannot be nil")
	}
	return &FavoriteUseCase{client: client}
}

// Execute toggles id and reports the new membership. Only ids present in
// the loaded catalog can be toggled.
func (u *FavoriteUseCase) Execute(ctx context.Context, useAPI bool, id string) (wishlist.Icon, error) {
	st, err := loadState(ctx, u.client, useAPI)
	if err != nil {
		colors.Warning(errors.Describe(errors.OpLoad, err))
	}

	icon, err := u.client.ToggleFavorite(st, id)
	if err != nil {
		if stderrors.Is(err, catalog.ErrNotFound) {
			return icon, err
		}
		return icon, errors.Wrap(errors.OpSave, err)
	}

	if icon == wishlist.IconSolid {
		colors.Success(fmt.Sprintf("%s %s added to favorites", format.HeartSolid, id))
	} else {
		colors.Success(fmt.Sprintf("%s %s removed from favorites", format.HeartOutline, id))
	}
	return icon, nil
}
