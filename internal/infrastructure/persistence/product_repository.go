package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByIDForStore finds a product by ID within a store
func (r *GormProductRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*catalog.Product, error) {
	var p catalog.Product
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND id = ?", storeID, id).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindByIDsForStore finds multiple products by ID within a store.
// IDs that do not resolve within the store are absent from the result.
func (r *GormProductRepository) FindByIDsForStore(ctx context.Context, storeID uuid.UUID, ids []uuid.UUID) ([]catalog.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []catalog.Product
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND id IN ?", storeID, ids).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindAllForStore finds products for a store, applying search and pagination
func (r *GormProductRepository) FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	var products []catalog.Product
	query := r.scoped(ctx, storeID, filter).
		Order("created_at ASC").
		Offset(filter.Offset()).
		Limit(filter.Limit)

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// CountForStore counts products for a store matching the filter's search
func (r *GormProductRepository) CountForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.scoped(ctx, storeID, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByName checks whether a product with the given name exists in the store
func (r *GormProductRepository) ExistsByName(ctx context.Context, storeID uuid.UUID, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.Product{}).
		Where("store_id = ? AND name = ?", storeID, name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// DeleteForStore deletes a product within a store
func (r *GormProductRepository) DeleteForStore(ctx context.Context, storeID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("store_id = ? AND id = ?", storeID, id).
		Delete(&catalog.Product{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// scoped builds the base query for a store with the filter's search applied
func (r *GormProductRepository) scoped(ctx context.Context, storeID uuid.UUID, filter shared.Filter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&catalog.Product{}).
		Where("store_id = ?", storeID)

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	return query
}
