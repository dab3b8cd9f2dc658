package auth

import (
	"context"
	"sync"
	"time"

	"shopapi.dev/internal/ids"
)

var _ UserStore = (*MemoryStore)(nil)

// MemoryStore implements UserStore with a mutex-guarded map keyed by
// normalized email. Used by tests and DSN-less development runs.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]*User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]*User)}
}

func (s *MemoryStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[NormalizeEmail(email)]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *MemoryStore) Create(ctx context.Context, u *User) error {
	email := NormalizeEmail(u.Email)
	if email == "" {
		return ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[email]; ok {
		return ErrAlreadyExists
	}
	if u.ID == "" {
		u.ID = ids.New()
	}
	now := time.Now().UTC()
	u.Email = email
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	s.users[email] = &cp
	return nil
}

func (s *MemoryStore) UpdatePassword(ctx context.Context, email, passwordHash string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[NormalizeEmail(email)]
	if !ok {
		return 0, nil
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now().UTC()
	return 1, nil
}
