// README: Redis-backed code store and revoker tests; gated on DRIVEHIRE_TEST_REDIS.
package auth

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("DRIVEHIRE_TEST_REDIS")
	if addr == "" {
		t.Skip("DRIVEHIRE_TEST_REDIS not set; skipping redis-backed tests")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func TestRedisCodeStore(t *testing.T) {
	store := NewCodeStore(setupRedis(t))
	ctx := context.Background()

	code, err := store.Issue(ctx, "code@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("expected 6-digit code, got %q", code)
	}

	// A wrong guess does not consume the code.
	if ok, err := store.Check(ctx, "code@example.com", "000000"); err != nil || ok {
		t.Fatalf("wrong code: ok=%v err=%v", ok, err)
	}
	if ok, err := store.Check(ctx, "code@example.com", code); err != nil || !ok {
		t.Fatalf("right code: ok=%v err=%v", ok, err)
	}
	// A successful check consumes it.
	if ok, _ := store.Check(ctx, "code@example.com", code); ok {
		t.Fatal("code should be consumed")
	}

	// Unknown email is a miss, not an error.
	if ok, err := store.Check(ctx, "nobody@example.com", "123456"); err != nil || ok {
		t.Fatalf("unknown email: ok=%v err=%v", ok, err)
	}
}

func TestRedisRevoker(t *testing.T) {
	revoker := NewRevoker(setupRedis(t))
	ctx := context.Background()

	if revoked, err := revoker.IsRevoked(ctx, "jti-fresh"); err != nil || revoked {
		t.Fatalf("fresh jti: revoked=%v err=%v", revoked, err)
	}
	if err := revoker.Revoke(ctx, "jti-dead", time.Minute); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if revoked, err := revoker.IsRevoked(ctx, "jti-dead"); err != nil || !revoked {
		t.Fatalf("revoked jti: revoked=%v err=%v", revoked, err)
	}

	// An already expired token needs no entry.
	if err := revoker.Revoke(ctx, "jti-expired", -time.Minute); err != nil {
		t.Fatalf("revoke expired: %v", err)
	}
	if revoked, _ := revoker.IsRevoked(ctx, "jti-expired"); revoked {
		t.Fatal("expired token should not be blacklisted")
	}
}
