package store

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// usageTTL keeps yesterday's keys around long enough for debugging but lets
// redis reclaim them on its own.
const usageTTL = 48 * time.Hour

// RedisUsage is a redis-backed UsageStore.
type RedisUsage struct {
	client *redis.Client
}

// NewRedisUsage connects to redis at addr and verifies the connection.
func NewRedisUsage(addr string) (*RedisUsage, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisUsage{client: client}, nil
}

// UsedToday returns the count consumed by username on day.
func (s *RedisUsage) UsedToday(ctx context.Context, username, day string) (int, error) {
	count, err := s.client.Get(ctx, usageKey(username, day)).Int()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read usage: %w", err)
	}
	return count, nil
}

// Increment consumes one generation and returns the new count.
func (s *RedisUsage) Increment(ctx context.Context, username, day string) (int, error) {
	key := usageKey(username, day)

	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment usage: %w", err)
	}
	if count == 1 {
		s.client.Expire(ctx, key, usageTTL)
	}
	return int(count), nil
}

// Close releases the redis connection.
func (s *RedisUsage) Close() error {
	return s.client.Close()
}
