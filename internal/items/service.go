package items

import (
	"context"
	"strings"
	"time"

	"shopapi.dev/internal/ids"
)

// Service exposes owner-scoped item management to the HTTP layer.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Add validates the input and stores a new item for the owner.
func (s *Service) Add(ctx context.Context, owner string, in Input) (*Item, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return nil, ErrInvalidInput
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	item := &Item{
		ID:          ids.New(),
		Owner:       owner,
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.store.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListByOwner returns the owner's items, newest last.
func (s *Service) ListByOwner(ctx context.Context, owner string) ([]*Item, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return nil, ErrInvalidInput
	}
	return s.store.ListByOwner(ctx, owner)
}

// Delete removes an item the owner holds. Missing and foreign items are
// indistinguishable to the caller.
func (s *Service) Delete(ctx context.Context, owner, id string) error {
	owner = strings.TrimSpace(owner)
	id = strings.TrimSpace(id)
	if owner == "" || id == "" {
		return ErrInvalidInput
	}
	return s.store.Delete(ctx, owner, id)
}
