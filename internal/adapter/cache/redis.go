package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/bus_booking/internal/core/ports"
)

// RedisCache implements ports.Cache on a Redis client. Used to keep
// repeated searches and suggestion lookups off the trip service.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ports.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}
