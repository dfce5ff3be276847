// README: One-time verification codes held in Redis.
package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

const codeTTL = 10 * time.Minute

// CodeStore issues and checks 6-digit verification codes. A code survives a
// failed check until its TTL runs out; a successful check consumes it.
type CodeStore interface {
	Issue(ctx context.Context, email string) (string, error)
	Check(ctx context.Context, email, code string) (bool, error)
}

type redisCodeStore struct {
	rdb *redis.Client
}

func NewCodeStore(rdb *redis.Client) CodeStore {
	return &redisCodeStore{rdb: rdb}
}

func codeKey(email string) string {
	return "auth:code:" + email
}

func (s *redisCodeStore) Issue(ctx context.Context, email string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	code := fmt.Sprintf("%06d", n.Int64())
	if err := s.rdb.Set(ctx, codeKey(email), code, codeTTL).Err(); err != nil {
		return "", err
	}
	return code, nil
}

func (s *redisCodeStore) Check(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.rdb.Get(ctx, codeKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if stored != code {
		return false, nil
	}
	if err := s.rdb.Del(ctx, codeKey(email)).Err(); err != nil {
		return false, err
	}
	return true, nil
}
