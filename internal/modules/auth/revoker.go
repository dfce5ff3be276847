// README: Token revocation list in Redis, keyed by jti.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Revoker blacklists token IDs until their natural expiry.
type Revoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type redisRevoker struct {
	rdb *redis.Client
}

func NewRevoker(rdb *redis.Client) Revoker {
	return &redisRevoker{rdb: rdb}
}

func revokedKey(jti string) string {
	return "auth:revoked:" + jti
}

func (r *redisRevoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired; nothing to blacklist.
		return nil
	}
	return r.rdb.Set(ctx, revokedKey(jti), "1", ttl).Err()
}

func (r *redisRevoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := r.rdb.Get(ctx, revokedKey(jti)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
