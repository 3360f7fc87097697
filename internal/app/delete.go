package app

import (
	"context"
	"fmt"
	"os"

	"github.com/cristianoliveira/shelf/internal/catalog"
	"github.com/cristianoliveira/shelf/internal/colors"
	"github.com/cristianoliveira/shelf/internal/errors"
)

// DeleteInput represents delete command inputs after flag parsing.
type DeleteInput struct {
	UseAPI        bool
	ID            string
	Yes           bool
	Confirm       func(title string) bool
	IsCIOrTestEnv func() bool
}

// DeleteUseCase removes a product.
type DeleteUseCase struct {
	client CatalogClient
}

// NewDeleteUseCase creates a new delete use-case.
func NewDeleteUseCase(client CatalogClient) *DeleteUseCase {
	if client == nil {
		panic("NewDeleteUseCase: client dependency cannot be nil")
	}
	return &DeleteUseCase{client: client}
}

// Execute asks for confirmation unless Yes is set or running in CI, then
// runs the delete flow. Remote ids call the API when it is enabled.
func (u *DeleteUseCase) Execute(ctx context.Context, input DeleteInput) error {
	if input.ID == "" {
		return fmt.Errorf("delete: an id is required")
	}

	st, err := loadState(ctx, u.client, input.UseAPI)
	if err != nil {
		colors.Warning(errors.Describe(errors.OpLoad, err))
	}
	target, ok := st.Find(input.ID)
	if !ok {
		return fmt.Errorf("delete %s: %w", input.ID, catalog.ErrNotFound)
	}

	isCIOrTest := input.IsCIOrTestEnv
	if isCIOrTest == nil {
		isCIOrTest = func() bool {
			return os.Getenv("CI") != ""
		}
	}
	if !input.Yes && !isCIOrTest() {
		if input.Confirm != nil && !input.Confirm(target.Title) {
			colors.Info("Operation cancelled")
			return nil
		}
	} else {
		colors.Debug("skipping delete confirmation")
	}

	mutation, err := u.client.Delete(ctx, target.ID, input.UseAPI)
	if err != nil {
		return errors.Wrap(errors.OpDelete, err)
	}
	st.Apply(mutation)
	colors.Success(mutation.Summary())
	return nil
}
