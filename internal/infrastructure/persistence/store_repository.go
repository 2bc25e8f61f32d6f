package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/store"
	"gorm.io/gorm"
)

// GormStoreRepository implements store.Repository using GORM
type GormStoreRepository struct {
	db *gorm.DB
}

// NewGormStoreRepository creates a new GormStoreRepository
func NewGormStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

// FindByID finds a store by its ID
func (r *GormStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*store.Store, error) {
	var s store.Store
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindBySlug finds a store by its slug
func (r *GormStoreRepository) FindBySlug(ctx context.Context, slug string) (*store.Store, error) {
	var s store.Store
	if err := r.db.WithContext(ctx).First(&s, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindAll returns all stores in creation order
func (r *GormStoreRepository) FindAll(ctx context.Context) ([]store.Store, error) {
	var stores []store.Store
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// ExistsByID checks whether a store with the given ID exists
func (r *GormStoreRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&store.Store{}).
		Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByName checks whether a store with the given name exists
func (r *GormStoreRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&store.Store{}).
		Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsBySlug checks whether a store with the given slug exists
func (r *GormStoreRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&store.Store{}).
		Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save persists a store (create or update)
func (r *GormStoreRepository) Save(ctx context.Context, s *store.Store) error {
	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Count returns the total number of stores
func (r *GormStoreRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&store.Store{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
