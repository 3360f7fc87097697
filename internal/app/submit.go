package app

import (
	"context"
	"fmt"

	"github.com/cristianoliveira/shelf/internal/catalog"
	"github.com/cristianoliveira/shelf/internal/colors"
	"github.com/cristianoliveira/shelf/internal/errors"
	"github.com/cristianoliveira/shelf/internal/product"
	"github.com/cristianoliveira/shelf/internal/tui/render"
)

// SubmitInput holds add/edit inputs after flag parsing. Nil fields keep
// the current value when editing and are empty when adding.
type SubmitInput struct {
	UseAPI      bool
	ID          string
	Name        *string
	Price       *string
	Description *string
	Image       *string
}

// SubmitUseCase creates or edits a product.
type SubmitUseCase struct {
	client CatalogClient
}

// NewSubmitUseCase creates a new add/edit use-case.
func NewSubmitUseCase(client CatalogClient) *SubmitUseCase {
	if client == nil {
		panic("NewSubmitUseCase: client dependency cannot be nil")
	}
	return &SubmitUseCase{client: client}
}

// Execute runs the submit flow and returns the resulting product. Editing
// loads the catalog first so the id keeps its origin and omitted fields
// keep their values.
func (u *SubmitUseCase) Execute(ctx context.Context, input SubmitInput) (product.Product, error) {
	st := catalog.NewState(input.UseAPI)
	var values render.FormValues
	var id product.ID

	if input.ID != "" {
		loaded, err := loadState(ctx, u.client, input.UseAPI)
		if err != nil {
			colors.Warning(errors.Describe(errors.OpLoad, err))
		}
		st = loaded
		current, ok := st.Find(input.ID)
		if !ok {
			return product.Product{}, fmt.Errorf("edit %s: %w", input.ID, catalog.ErrNotFound)
		}
		id = current.ID
		values = render.FillForm(current)
	}
	overlay(&values, input)

	mutation, err := u.client.Submit(ctx, catalog.Form{
		ID:          id,
		Name:        values.Name,
		Price:       values.Price,
		Description: values.Description,
		Image:       values.Image,
	}, input.UseAPI)
	if err != nil {
		if catalog.IsValidation(err) {
			return product.Product{}, err
		}
		return product.Product{}, errors.Wrap(errors.OpSave, err)
	}

	st.Apply(mutation)
	result := mutation.Product
	if mutation.Kind == catalog.MutationMerge {
		result, _ = st.Find(mutation.ID.String())
	}
	colors.Success(mutation.Summary())
	return result, nil
}

func overlay(v *render.FormValues, input SubmitInput) {
	if input.Name != nil {
		v.Name = *input.Name
	}
	if input.Price != nil {
		v.Price = *input.Price
	}
	if input.Description != nil {
		v.Description = *input.Description
	}
	if input.Image != nil {
		v.Image = *input.Image
	}
}
