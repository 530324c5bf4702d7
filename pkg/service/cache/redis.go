package cache

import (
	"context"
	"errors"
	"time"

	"github.com/adopt-lab/harbinger/pkg/utils/logging"
	"github.com/redis/go-redis/v9"
)

// RedisCache is a Cache backed by a shared Redis instance, for deployments
// where multiple scan workers should share memoized generation results.
// Redis handles expiry itself, so no lazy eviction is needed here.
type RedisCache struct {
	client *redis.Client
}

var _ Cache = &RedisCache{}

func NewRedisCache(addr, password string, db int) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			// Backend trouble degrades to a miss, not a failure
			logging.From(ctx).Warn("redis cache get failed", "key", key, "error", err.Error())
		}
		return nil, false
	}
	return value, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		logging.From(ctx).Warn("redis cache set failed", "key", key, "error", err.Error())
	}
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
