package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/storefront/backend/internal/application/storefront"
	"github.com/storefront/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// RedisProjectionCache implements storefront.ProjectionCache using Redis.
// Cache failures are logged and treated as misses so the storefront can
// always fall back to the database.
type RedisProjectionCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisProjectionCache creates a Redis-backed storefront projection cache
func NewRedisProjectionCache(cfg *config.RedisConfig, ttl time.Duration, logger *zap.Logger) (*RedisProjectionCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &RedisProjectionCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}, nil
}

func projectionKey(storeID uuid.UUID) string {
	return fmt.Sprintf("storefront:%s", storeID)
}

// Get retrieves the cached projection for a store
func (c *RedisProjectionCache) Get(ctx context.Context, storeID uuid.UUID) (*storefront.Response, bool) {
	key := projectionKey(storeID)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Error("Failed to read storefront projection from cache",
			zap.String("store_id", storeID.String()),
			zap.Error(err))
		return nil, false
	}

	var resp storefront.Response
	if err := json.Unmarshal(data, &resp); err != nil {
		c.logger.Error("Failed to unmarshal storefront projection",
			zap.String("store_id", storeID.String()),
			zap.Error(err))
		// Drop the corrupted entry
		_ = c.client.Del(ctx, key)
		return nil, false
	}

	return &resp, true
}

// Set stores the projection for a store
func (c *RedisProjectionCache) Set(ctx context.Context, storeID uuid.UUID, resp *storefront.Response) {
	if resp == nil {
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		c.logger.Error("Failed to marshal storefront projection",
			zap.String("store_id", storeID.String()),
			zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, projectionKey(storeID), data, c.ttl).Err(); err != nil {
		c.logger.Error("Failed to cache storefront projection",
			zap.String("store_id", storeID.String()),
			zap.Error(err))
	}
}

// InvalidateStore drops the cached projection for a store
func (c *RedisProjectionCache) InvalidateStore(ctx context.Context, storeID uuid.UUID) {
	if err := c.client.Del(ctx, projectionKey(storeID)).Err(); err != nil {
		c.logger.Error("Failed to invalidate storefront projection",
			zap.String("store_id", storeID.String()),
			zap.Error(err))
	}
}

// Close releases the Redis client
func (c *RedisProjectionCache) Close() error {
	return c.client.Close()
}

var _ storefront.ProjectionCache = (*RedisProjectionCache)(nil)
