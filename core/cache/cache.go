package cache

import (
	"context"
	"time"

	"event-portal/core/config"
	"event-portal/core/constants"
	"event-portal/core/logger"

	"github.com/redis/go-redis/v9"
)

// Cache keeps short-lived state shared between requests: revoked session ids.
type Cache interface {
	RevokeSession(ctx context.Context, sessionID string, ttl time.Duration) error
	IsSessionRevoked(ctx context.Context, sessionID string) (bool, error)
	Close() error
}

type redisCache struct {
	client *redis.Client
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewRedisCache pings the server before handing out the cache.
func NewRedisCache(ctx context.Context, client *redis.Client) (Cache, error) {
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Cache:NewRedisCache:Ping:Error", "error", err)
		return nil, err
	}
	return &redisCache{client: client}, nil
}

func (c *redisCache) RevokeSession(ctx context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.client.Set(ctx, constants.RedisKeySessionRevoked+sessionID, 1, ttl).Err()
}

func (c *redisCache) IsSessionRevoked(ctx context.Context, sessionID string) (bool, error) {
	n, err := c.client.Exists(ctx, constants.RedisKeySessionRevoked+sessionID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
