package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// unreachable Redis: every command fails, exercising the ErrUnavailable paths.
func unreachableCache() *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		ReadTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	return NewRedisCache(client)
}

func TestPut_RejectsBadArguments(t *testing.T) {
	c := unreachableCache()
	ctx := context.Background()

	if err := c.Put(ctx, "", "token", time.Minute); err == nil {
		t.Error("Put with empty email should fail")
	}
	if err := c.Put(ctx, "a@x.com", "", time.Minute); err == nil {
		t.Error("Put with empty token should fail")
	}
	if err := c.Put(ctx, "a@x.com", "token", 0); err == nil {
		t.Error("Put with zero ttl should fail")
	}
}

func TestUnreachableRedisIsUnavailable(t *testing.T) {
	c := unreachableCache()
	ctx := context.Background()

	if err := c.Put(ctx, "a@x.com", "token", time.Minute); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Put error = %v, want ErrUnavailable", err)
	}
	if _, err := c.Get(ctx, "a@x.com"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Get error = %v, want ErrUnavailable", err)
	}
	if err := c.Delete(ctx, "a@x.com"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Delete error = %v, want ErrUnavailable", err)
	}
}

func TestKeyPrefix(t *testing.T) {
	if got := key("a@x.com"); got != "session:a@x.com" {
		t.Errorf("key = %q, want %q", got, "session:a@x.com")
	}
}
