package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const minRevokeTTL = time.Minute

// TokenStore implements the JWT revocation list backed by Redis.
// Key format: revoked:<jti>, expiring together with the token itself.
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a TokenStore wrapping the given Redis client.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Revoke records the token id as revoked until expiresAt (unix seconds). A
// token already past expiry is still held for minRevokeTTL to cover clock skew.
func (s *TokenStore) Revoke(ctx context.Context, tokenID string, expiresAt int64) error {
	ttl := time.Until(time.Unix(expiresAt, 0))
	if ttl < minRevokeTTL {
		ttl = minRevokeTTL
	}
	return s.client.Set(ctx, s.key(tokenID), "1", ttl).Err()
}

// IsRevoked reports whether the token id is on the revocation list.
func (s *TokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (s *TokenStore) key(tokenID string) string {
	return "revoked:" + tokenID
}
