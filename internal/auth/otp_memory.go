package auth

import (
	"context"
	"sync"
)

var _ ChallengeStore = (*MemoryChallengeStore)(nil)

// MemoryChallengeStore keeps challenges in a mutex-guarded map. Suitable for
// single-node deployments and as the test double; the mutex makes Upsert the
// atomic replace the contract requires.
type MemoryChallengeStore struct {
	mu         sync.Mutex
	challenges map[string]Challenge
}

func NewMemoryChallengeStore() *MemoryChallengeStore {
	return &MemoryChallengeStore{challenges: make(map[string]Challenge)}
}

func (s *MemoryChallengeStore) Upsert(ctx context.Context, email string, ch Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[email] = ch
	return nil
}

func (s *MemoryChallengeStore) Get(ctx context.Context, email string) (Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch, ok := s.challenges[email]
	if !ok {
		return Challenge{}, ErrNoChallenge
	}
	return ch, nil
}

func (s *MemoryChallengeStore) Delete(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.challenges, email)
	return nil
}
