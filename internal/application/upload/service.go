package upload

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/store"
	"go.uber.org/zap"
)

// ObjectStorage is the port for the image storage backend.
// Implementations: S3-compatible object storage and a local directory.
type ObjectStorage interface {
	// Put stores an object under the given key and returns its public URL
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}

// File is one incoming upload
type File struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadedImage describes one stored image. Filename is the full object
// key, which embeds the owning store ID so storage isolation is auditable.
type UploadedImage struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// Result is the upload response payload
type Result struct {
	Images []UploadedImage `json:"images"`
}

// Service handles store-scoped image uploads
type Service struct {
	storeRepo store.Repository
	storage   ObjectStorage
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a new upload Service
func NewService(storeRepo store.Repository, storage ObjectStorage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		storeRepo: storeRepo,
		storage:   storage,
		logger:    logger,
		now:       time.Now,
	}
}

// Upload stores one or more image files for a store. Object keys embed the
// store ID plus a nanosecond timestamp so concurrent uploads of the same
// filename never collide across or within stores.
func (s *Service) Upload(ctx context.Context, storeID uuid.UUID, files []File) (*Result, error) {
	exists, err := s.storeRepo.ExistsByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.NewDomainError("NOT_FOUND", "Store not found")
	}
	if len(files) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "No files provided")
	}

	images := make([]UploadedImage, 0, len(files))
	for _, f := range files {
		key := s.objectKey(storeID, f.Filename)
		url, err := s.storage.Put(ctx, key, f.ContentType, f.Body, f.Size)
		if err != nil {
			return nil, fmt.Errorf("storing %s: %w", f.Filename, err)
		}
		images = append(images, UploadedImage{URL: url, Filename: key})

		s.logger.Info("image uploaded",
			zap.String("store_id", storeID.String()),
			zap.String("key", key),
			zap.Int64("size", f.Size),
		)
	}

	return &Result{Images: images}, nil
}

// objectKey builds "stores/{storeId}/{unixnano}-{name}"
func (s *Service) objectKey(storeID uuid.UUID, filename string) string {
	return fmt.Sprintf("stores/%s/%d-%s", storeID, s.now().UnixNano(), sanitizeFilename(filename))
}

// sanitizeFilename keeps the base name and replaces anything that is not
// alphanumeric, dot, hyphen or underscore
func sanitizeFilename(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "." || base == "/" || base == "" {
		return "image"
	}

	var b strings.Builder
	b.Grow(len(base))
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
