package auth

import "context"

// UserStore is the account persistence contract the gateway depends on. The
// record layout behind it is opaque; only identity-keyed lookup and update
// semantics matter here.
type UserStore interface {
	// FindByEmail returns the account for a normalized email, ErrNotFound
	// when no such account exists.
	FindByEmail(ctx context.Context, email string) (*User, error)
	// Create inserts a new account. ErrAlreadyExists signals an identity
	// collision.
	Create(ctx context.Context, u *User) error
	// UpdatePassword replaces the stored hash and reports how many records
	// changed.
	UpdatePassword(ctx context.Context, email, passwordHash string) (int64, error)
}
