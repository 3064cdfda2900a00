package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	submitKeyPrefix = "submit:"
	submitKeyTTL    = 24 * time.Hour
)

// RedisGuard suppresses duplicate ticket submissions with a SetNX key per
// ticket. Keys expire so an abandoned ticket id cannot block forever.
type RedisGuard struct {
	client *redis.Client
}

func NewRedisGuard(client *redis.Client) *RedisGuard {
	return &RedisGuard{client: client}
}

func (g *RedisGuard) Acquire(ctx context.Context, key string) (bool, error) {
	return g.client.SetNX(ctx, submitKeyPrefix+key, 1, submitKeyTTL).Result()
}

func (g *RedisGuard) Release(ctx context.Context, key string) error {
	return g.client.Del(ctx, submitKeyPrefix+key).Err()
}
