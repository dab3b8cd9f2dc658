package items

import "context"

// Store persists items. Deletion is owner-scoped: a caller can only delete
// records it owns.
type Store interface {
	Create(ctx context.Context, item *Item) error
	ListByOwner(ctx context.Context, owner string) ([]*Item, error)
	// Delete removes the item when it exists and belongs to owner,
	// ErrNotFound otherwise.
	Delete(ctx context.Context, owner, id string) error
}
