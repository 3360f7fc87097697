package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cristianoliveira/shelf/internal/api"
	"github.com/cristianoliveira/shelf/internal/input"
	"github.com/cristianoliveira/shelf/internal/logging"
	"github.com/cristianoliveira/shelf/internal/product"
	"github.com/cristianoliveira/shelf/internal/wishlist"
)

// Remote is the product API used by the flows.
type Remote interface {
	FetchProducts(ctx context.Context) ([]product.Product, error)
	CreateProduct(ctx context.Context, payload product.Payload) (product.Patch, error)
	UpdateProduct(ctx context.Context, id string, payload product.Payload) (product.Patch, error)
	DeleteProduct(ctx context.Context, id string) (api.DeleteResult, error)
}

// Favorites persists the wishlist.
type Favorites interface {
	Load() ([]string, bool, error)
	Toggle(id string, list []string) ([]string, wishlist.Icon, error)
}

var (
	_ Remote    = (*api.Client)(nil)
	_ Favorites = (*wishlist.Manager)(nil)
)

// Service runs the network and storage phase of each flow. It never
// touches a State except in ToggleFavorite, which the owner calls inline.
type Service struct {
	remote    Remote
	favorites Favorites
	now       func() time.Time
}

// NewService wires the flows to a remote API and a wishlist store.
func NewService(remote Remote, favorites Favorites) *Service {
	if remote == nil {
		panic("catalog.NewService: remote must not be nil")
	}
	if favorites == nil {
		panic("catalog.NewService: favorites must not be nil")
	}
	return &Service{remote: remote, favorites: favorites, now: time.Now}
}

// Snapshot is the result of a load.
type Snapshot struct {
	Items         []product.Product
	Wishlist      []string
	WishlistFound bool
	// Fallback is set when the load failed and Items holds mock data.
	Fallback bool
}

// FallbackSnapshot is mock data with an empty wishlist.
func FallbackSnapshot() Snapshot {
	return Snapshot{Items: product.Mock(), Wishlist: []string{}, Fallback: true}
}

// Fetch loads the items (remote or mock) and the stored wishlist. On any
// error it returns FallbackSnapshot together with the error.
func (s *Service) Fetch(ctx context.Context, useAPI bool) (Snapshot, error) {
	log := logging.With("flow", "load", "use_api", useAPI)

	items := product.Mock()
	if useAPI {
		remote, err := s.remote.FetchProducts(ctx)
		if err != nil {
			log.Warn("load failed, using mock data", "error", err)
			return FallbackSnapshot(), err
		}
		items = remote
	}

	list, found, err := s.favorites.Load()
	if err != nil {
		log.Warn("wishlist unreadable, using mock data", "error", err)
		return FallbackSnapshot(), err
	}
	log.Debug("loaded", "items", len(items), "favorites", len(list))
	return Snapshot{Items: items, Wishlist: list, WishlistFound: found}, nil
}

// Form is the submitted edit form. A zero ID means create.
type Form struct {
	ID          product.ID
	Name        string
	Price       string
	Description string
	Image       string
}

// IsEdit reports whether the form targets an existing item.
func (f Form) IsEdit() bool { return !f.ID.IsZero() }

// IsValidation reports whether err is a form validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, input.ErrNameTooShort) || errors.Is(err, input.ErrPriceTooLow)
}

// BuildPayload validates the form and returns the body sent to the API.
// The description is sanitized before it is stored or sent.
func BuildPayload(f Form) (product.Payload, error) {
	valid, err := input.Validate(input.Form{Name: f.Name, Price: f.Price})
	if err != nil {
		return product.Payload{}, err
	}
	return product.Payload{
		Title:       valid.Name,
		Price:       valid.Price,
		Description: input.Sanitize(f.Description),
		Image:       f.Image,
	}, nil
}

// Submit validates the form and runs its network call, if any.
//
// Editing a remote id with the API enabled sends an update and merges the
// echo. Editing otherwise merges the payload locally. Creating with the API
// enabled prepends the created product; a response without id gets a local
// id. Creating with the API disabled prepends the payload under a new
// local id.
func (s *Service) Submit(ctx context.Context, f Form, useAPI bool) (Mutation, error) {
	payload, err := BuildPayload(f)
	if err != nil {
		return Mutation{}, err
	}
	log := logging.With("flow", "submit", "id", f.ID.String(), "use_api", useAPI)

	if f.IsEdit() {
		if useAPI && f.ID.IsRemote() {
			patch, err := s.remote.UpdateProduct(ctx, f.ID.String(), payload)
			if err != nil {
				log.Warn("update failed", "error", err)
				return Mutation{}, gone(err)
			}
			return Mutation{Kind: MutationMerge, ID: f.ID, Patch: patch}, nil
		}
		return Mutation{Kind: MutationMerge, ID: f.ID, Patch: payload.Patch()}, nil
	}

	localID := product.NewLocalID(s.now())
	if !useAPI {
		return Mutation{Kind: MutationPrepend, Product: product.Product{ID: localID}.Merge(payload.Patch())}, nil
	}
	patch, err := s.remote.CreateProduct(ctx, payload)
	if err != nil {
		log.Warn("create failed", "error", err)
		return Mutation{}, err
	}
	created := patch.Product(localID)
	log.Debug("created", "new_id", created.ID.String(), "origin", created.ID.Origin().String())
	return Mutation{Kind: MutationPrepend, Product: created}, nil
}

// gone marks a 404 from the API so callers can tell a product removed
// upstream from other failures.
func gone(err error) error {
	if api.IsNotFound(err) {
		return fmt.Errorf("%w (%w)", ErrGone, err)
	}
	return err
}

// Delete calls the API for remote ids when enabled and returns the removal.
func (s *Service) Delete(ctx context.Context, id product.ID, useAPI bool) (Mutation, error) {
	if id.IsZero() {
		return Mutation{}, fmt.Errorf("delete: %w", ErrNotFound)
	}
	if useAPI && id.IsRemote() {
		if _, err := s.remote.DeleteProduct(ctx, id.String()); err != nil {
			logging.Warn("delete failed", "flow", "delete", "id", id.String(), "error", err)
			return Mutation{}, gone(err)
		}
	}
	return Mutation{Kind: MutationRemove, ID: id}, nil
}

// ToggleFavorite flips id in the stored wishlist and persists it. The
// stored list is the base, so ids pruned from memory or hidden by a
// fallback load survive the toggle. An unreadable store falls back to
// st.Wishlist. The in-memory list is updated even when saving fails.
func (s *Service) ToggleFavorite(st *State, id string) (wishlist.Icon, error) {
	if _, ok := st.Find(id); !ok {
		return wishlist.IconOutline, fmt.Errorf("favorite %q: %w", id, ErrNotFound)
	}
	base := st.Wishlist
	stored, found, err := s.favorites.Load()
	switch {
	case err != nil:
		logging.Warn("wishlist unreadable, toggling the in-memory list", "flow", "favorite", "error", err)
	case found:
		base = stored
	}
	list, icon, err := s.favorites.Toggle(id, base)
	st.Wishlist = list
	return icon, err
}

// Load runs Fetch and applies the snapshot, for callers that own the
// state on the current goroutine (CLI commands).
func (s *Service) Load(ctx context.Context, st *State) error {
	snap, err := s.Fetch(ctx, st.UseAPI)
	st.ApplySnapshot(snap)
	return err
}
