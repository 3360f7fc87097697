// Package wishlist persists the set of favorite product ids.
package wishlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/cristianoliveira/shelf/internal/product"
	"github.com/cristianoliveira/shelf/internal/storage"
)

// Key is the storage key holding the JSON array of ids.
const Key = "favorites"

// Icon is the favorite marker state after a toggle.
type Icon int

const (
	IconOutline Icon = iota
	IconSolid
)

func (i Icon) String() string {
	if i == IconSolid {
		return "solid"
	}
	return "outline"
}

// ErrCorrupt wraps a stored value that is not a JSON array of strings.
var ErrCorrupt = errors.New("wishlist: stored value is corrupt")

// Manager reads and writes the wishlist in a key/value store.
type Manager struct {
	kv storage.KV
}

func NewManager(kv storage.KV) *Manager {
	return &Manager{kv: kv}
}

// Load returns the stored list. ok is false when nothing was ever saved.
func (m *Manager) Load() (list []string, ok bool, err error) {
	raw, err := m.kv.Get(Key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("wishlist: load: %w", err)
	}
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if list == nil {
		list = []string{}
	}
	return list, true, nil
}

// Save writes list as a JSON array.
func (m *Manager) Save(list []string) error {
	if list == nil {
		list = []string{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("wishlist: encode: %w", err)
	}
	if err := m.kv.Set(Key, string(data)); err != nil {
		return fmt.Errorf("wishlist: save: %w", err)
	}
	return nil
}

// Toggle removes id when present and appends it otherwise, then persists.
// The input slice is not modified. On a save error the updated list is
// still returned so the caller can keep the in-memory state.
func (m *Manager) Toggle(id string, list []string) ([]string, Icon, error) {
	next, icon := toggle(id, list)
	return next, icon, m.Save(next)
}

func toggle(id string, list []string) ([]string, Icon) {
	if i := slices.Index(list, id); i >= 0 {
		next := make([]string, 0, len(list)-1)
		next = append(next, list[:i]...)
		return append(next, list[i+1:]...), IconOutline
	}
	next := make([]string, 0, len(list)+1)
	next = append(next, list...)
	return append(next, id), IconSolid
}

// Contains reports whether id is in list.
func Contains(list []string, id string) bool {
	return slices.Contains(list, id)
}

// Prune drops ids that no item carries, keeping order. It returns the
// pruned list and whether anything was removed.
func Prune(list []string, items []product.Product) ([]string, bool) {
	out := make([]string, 0, len(list))
	for _, id := range list {
		if product.Index(items, id) >= 0 {
			out = append(out, id)
		}
	}
	return out, len(out) != len(list)
}
