package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	derr "github.com/khwalser/nextownair-site/internal/domain/errors"
	"github.com/redis/go-redis/v9"
)

// TokenStore keeps the provider bearer token across invocations, keyed per
// client id so rotated credentials never reuse a stale token.
type TokenStore struct {
	redis *redis.Client
	key   string
}

func NewTokenStore(client *redis.Client, clientID string) *TokenStore {
	return &TokenStore{
		redis: client,
		key:   fmt.Sprintf("flight-proxy:token:%s", clientID),
	}
}

func (s *TokenStore) Get(ctx context.Context) (string, error) {
	token, err := s.redis.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", derr.ErrTokenNotFound
		}
		return "", fmt.Errorf("token store read: %w", err)
	}
	return token, nil
}

func (s *TokenStore) Save(ctx context.Context, token string, ttl time.Duration) error {
	if err := s.redis.Set(ctx, s.key, token, ttl).Err(); err != nil {
		return fmt.Errorf("token store write: %w", err)
	}
	return nil
}
