package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// RedisCache implements Cache on a Redis instance. Entry expiry is delegated
// to Redis key TTLs; a SET for an existing key overwrites the value and
// resets the TTL, which preserves the overwrite semantics Put requires.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache returns a Cache backed by the given Redis client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// NewRedisClient connects to Redis at addr and verifies the connection with a
// bounded ping. Caller must Close the client on shutdown.
func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("session: redis ping: %w", err)
	}
	return client, nil
}

func key(email string) string {
	return keyPrefix + email
}

func (c *RedisCache) Put(ctx context.Context, email, token string, ttl time.Duration) error {
	if email == "" || token == "" {
		return errors.New("session: missing email or token")
	}
	if ttl <= 0 {
		return errors.New("session: ttl must be positive")
	}
	if err := c.client.Set(ctx, key(email), token, ttl).Err(); err != nil {
		return fmt.Errorf("%w: put: %v", ErrUnavailable, err)
	}
	return nil
}

func (c *RedisCache) Get(ctx context.Context, email string) (string, error) {
	val, err := c.client.Get(ctx, key(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil // no session
	}
	if err != nil {
		return "", fmt.Errorf("%w: get: %v", ErrUnavailable, err)
	}
	return val, nil
}

func (c *RedisCache) Delete(ctx context.Context, email string) error {
	if err := c.client.Del(ctx, key(email)).Err(); err != nil {
		return fmt.Errorf("%w: delete: %v", ErrUnavailable, err)
	}
	return nil
}
