package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisCache 多实例部署时共享缩略图
type RedisCache struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Redis: rdb, TTL: ttl}
}

func (c *RedisCache) Get(ctx context.Context, videoID int64) (string, bool, error) {
	val, err := c.Redis.Get(ctx, key(videoID)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *RedisCache) SetIfAbsent(ctx context.Context, videoID int64, dataURL string) error {
	return c.Redis.SetNX(ctx, key(videoID), dataURL, c.TTL).Err()
}
