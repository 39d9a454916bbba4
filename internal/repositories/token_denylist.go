package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-travel-planner/internal/logger"
)

const revokedTokenKeyPrefix = "token:revoked:"

// TokenDenylistRepository records revoked token ids in Redis.
// Entries expire together with the token they revoke.
type TokenDenylistRepository struct {
	client *redis.Client
}

func NewTokenDenylistRepository(client *redis.Client) *TokenDenylistRepository {
	return &TokenDenylistRepository{client: client}
}

// Revoke denylists tokenID for ttl. Non-positive ttl is a no-op since the
// token has already expired.
func (r *TokenDenylistRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	key := revokedTokenKeyPrefix + tokenID
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Infow("token revoked",
		"key", key,
		"ttl", ttl,
		"error", err,
	)
	return err
}

// IsRevoked reports whether tokenID has been denylisted.
func (r *TokenDenylistRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := revokedTokenKeyPrefix + tokenID
	n, err := r.client.Exists(ctx, key).Result()

	logger.Log.Debugw("token revocation lookup",
		"key", key,
		"result", n,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return n > 0, nil
}
