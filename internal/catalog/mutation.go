package catalog

import "github.com/cristianoliveira/shelf/internal/product"

// MutationKind selects how a Mutation changes State.Items.
type MutationKind int

const (
	MutationNone MutationKind = iota
	MutationPrepend
	MutationMerge
	MutationRemove
)

// Mutation is the state change produced by a network phase. It is applied
// later by the state owner with State.Apply.
type Mutation struct {
	Kind MutationKind
	// ID targets merge and remove.
	ID product.ID
	// Product is inserted by prepend.
	Product product.Product
	// Patch is merged into the target.
	Patch product.Patch
}

// Summary is the confirmation shown once the mutation is applied.
func (m Mutation) Summary() string {
	switch m.Kind {
	case MutationPrepend:
		return "Product added"
	case MutationMerge:
		return "Product updated"
	case MutationRemove:
		return "Product deleted"
	default:
		return ""
	}
}
