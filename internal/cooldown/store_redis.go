package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cooldown:"

// RedisStore shares cooldowns between instances. A claim is a SET NX with
// the window as expiry; a lost claim reads the remaining PTTL.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Acquire(ctx context.Context, key string, window time.Duration) (bool, time.Duration, error) {
	key = keyPrefix + key
	ok, err := s.client.SetNX(ctx, key, "1", window).Result()
	if err != nil {
		return false, 0, fmt.Errorf("claim cooldown: %w", err)
	}
	if ok {
		return true, 0, nil
	}

	ttl, err := s.client.PTTL(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("read cooldown ttl: %w", err)
	}
	// -2: expired between the two commands; -1: no expiry, which SET NX never writes.
	if ttl < 0 {
		ttl = 0
	}
	return false, ttl, nil
}
