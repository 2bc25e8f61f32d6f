package cache

import (
	"github.com/storefront/backend/internal/application/storefront"
	"github.com/storefront/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewProjectionCache returns the configured storefront projection cache:
// Redis when enabled, otherwise an in-memory cache.
func NewProjectionCache(cfg *config.Config, logger *zap.Logger) (storefront.ProjectionCache, error) {
	if cfg.Redis.Enabled {
		return NewRedisProjectionCache(&cfg.Redis, cfg.Cache.StorefrontTTL, logger)
	}
	return NewInMemoryProjectionCache(cfg.Cache.StorefrontTTL), nil
}
