package storage

import (
	"fmt"

	"github.com/storefront/backend/internal/application/upload"
	infraconfig "github.com/storefront/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewObjectStorage returns the configured object storage backend
func NewObjectStorage(cfg *infraconfig.StorageConfig, logger *zap.Logger) (upload.ObjectStorage, error) {
	switch cfg.Backend {
	case "s3":
		return NewS3ObjectStorage(cfg, logger)
	case "local":
		return NewLocalObjectStorage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.Backend)
	}
}
