// Package catalog implements the product flows (load, submit, delete,
// favorite, search) and the in-memory application state they act on.
package catalog

import (
	"errors"

	"github.com/cristianoliveira/shelf/internal/product"
	"github.com/cristianoliveira/shelf/internal/search"
	"github.com/cristianoliveira/shelf/internal/wishlist"
)

var (
	// ErrNotFound is returned when no item carries the requested id.
	ErrNotFound = errors.New("product not found")
	// ErrGone is returned when the API answers 404 for an update or delete.
	ErrGone = errors.New("product no longer exists")
)

// State is owned by a single controller. Items keep insertion order and
// Wishlist holds favorite ids without duplicates.
type State struct {
	Items    []product.Product
	Wishlist []string
	UseAPI   bool
}

// NewState returns an empty state reading from the API when useAPI is set.
func NewState(useAPI bool) *State {
	return &State{Items: []product.Product{}, Wishlist: []string{}, UseAPI: useAPI}
}

// ApplySnapshot replaces the items. A stored wishlist replaces the current
// one; after a successful load, ids missing from the items are dropped from
// memory. A fallback snapshot leaves the wishlist as it was. It reports
// whether anything was pruned.
func (st *State) ApplySnapshot(s Snapshot) bool {
	st.Items = s.Items
	if st.Items == nil {
		st.Items = []product.Product{}
	}
	if st.Wishlist == nil {
		st.Wishlist = []string{}
	}
	if s.Fallback {
		return false
	}
	if s.WishlistFound && s.Wishlist != nil {
		st.Wishlist = s.Wishlist
	}
	var pruned bool
	st.Wishlist, pruned = wishlist.Prune(st.Wishlist, st.Items)
	return pruned
}

// Apply runs a mutation returned by Service. It reports whether an item was
// affected.
func (st *State) Apply(m Mutation) bool {
	switch m.Kind {
	case MutationPrepend:
		st.Items = append([]product.Product{m.Product}, st.Items...)
		return true
	case MutationMerge:
		i := product.Index(st.Items, m.ID.String())
		if i < 0 {
			return false
		}
		items := make([]product.Product, len(st.Items))
		copy(items, st.Items)
		items[i] = items[i].Merge(m.Patch)
		st.Items = items
		return true
	case MutationRemove:
		i := product.Index(st.Items, m.ID.String())
		if i < 0 {
			return false
		}
		items := make([]product.Product, 0, len(st.Items)-1)
		items = append(items, st.Items[:i]...)
		st.Items = append(items, st.Items[i+1:]...)
		return true
	default:
		return false
	}
}

// Find looks an item up by the string form of its id.
func (st *State) Find(id string) (product.Product, bool) {
	if i := product.Index(st.Items, id); i >= 0 {
		return st.Items[i], true
	}
	return product.Product{}, false
}

// Filter returns the items matching query. Items is left untouched.
func (st *State) Filter(provider search.Provider, query string) []product.Product {
	return search.Filter(provider, st.Items, query)
}

// IsFavorite reports wishlist membership for id.
func (st *State) IsFavorite(id string) bool {
	return wishlist.Contains(st.Wishlist, id)
}
