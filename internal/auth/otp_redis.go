package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const challengeKeyPrefix = "otp"

var _ ChallengeStore = (*RedisChallengeStore)(nil)

// RedisChallengeStore keeps the single live challenge per identity in redis.
// SET with a TTL is one command, so the replace-or-insert is atomic even under
// concurrent issuance, and redis expires stale challenges on its own.
type RedisChallengeStore struct {
	client *redis.Client
	prefix string
}

func NewRedisChallengeStore(client *redis.Client) *RedisChallengeStore {
	return &RedisChallengeStore{client: client, prefix: challengeKeyPrefix}
}

func (s *RedisChallengeStore) key(email string) string {
	return s.prefix + ":" + email
}

func (s *RedisChallengeStore) Upsert(ctx context.Context, email string, ch Challenge) error {
	ttl := time.Until(ch.ExpiresAt)
	if ttl <= 0 {
		return errors.New("auth: challenge already expired")
	}
	payload, err := json.Marshal(ch)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key(email), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *RedisChallengeStore) Get(ctx context.Context, email string) (Challenge, error) {
	data, err := s.client.Get(ctx, s.key(email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Challenge{}, ErrNoChallenge
		}
		return Challenge{}, fmt.Errorf("redis get: %w", err)
	}
	var ch Challenge
	if err := json.Unmarshal(data, &ch); err != nil {
		return Challenge{}, ErrNoChallenge
	}
	return ch, nil
}

func (s *RedisChallengeStore) Delete(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, s.key(email)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
