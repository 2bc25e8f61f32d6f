package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/storefront/backend/internal/application/upload"
	infraconfig "github.com/storefront/backend/internal/infrastructure/config"
)

// Ensure LocalObjectStorage implements upload.ObjectStorage
var _ upload.ObjectStorage = (*LocalObjectStorage)(nil)

// LocalObjectStorage implements upload.ObjectStorage on the local filesystem.
// Stored files are served by the HTTP server under /uploads/.
type LocalObjectStorage struct {
	dir     string
	baseURL string
}

// NewLocalObjectStorage creates a filesystem-backed object storage rooted at
// the configured directory
func NewLocalObjectStorage(cfg *infraconfig.StorageConfig) (*LocalObjectStorage, error) {
	if cfg == nil {
		return nil, errors.New("storage configuration is required")
	}
	if cfg.LocalDir == "" {
		return nil, errors.New("storage local directory is required")
	}

	if err := os.MkdirAll(cfg.LocalDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalObjectStorage{
		dir:     cfg.LocalDir,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}, nil
}

// Dir returns the root directory files are stored under
func (s *LocalObjectStorage) Dir() string {
	return s.dir
}

// Put writes an object under the storage directory and returns its public URL
func (s *LocalObjectStorage) Put(_ context.Context, key, _ string, body io.Reader, _ int64) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}

	// Keys are generated server-side, but reject traversal outright
	cleaned := filepath.Clean(key)
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}

	path := filepath.Join(s.dir, cleaned)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create object directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create object file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		return "", fmt.Errorf("failed to write object: %w", err)
	}

	return s.baseURL + "/uploads/" + key, nil
}
