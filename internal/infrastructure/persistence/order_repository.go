package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/ordering"
	"github.com/storefront/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormOrderRepository implements ordering.Repository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create saves a new order, allocating its order number inside the insert
// transaction. Numbers are sequential per store (ORD-000001, ORD-000002, ...);
// the unique index on (store_id, order_number) backstops concurrent inserts.
func (r *GormOrderRepository) Create(ctx context.Context, order *ordering.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&ordering.Order{}).
			Where("store_id = ?", order.StoreID).
			Count(&count).Error; err != nil {
			return err
		}
		order.OrderNumber = fmt.Sprintf("ORD-%06d", count+1)
		return tx.Create(order).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrConcurrencyConflict
		}
		return err
	}
	return nil
}

// FindByIDForStore finds an order by ID within a store
func (r *GormOrderRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*ordering.Order, error) {
	var o ordering.Order
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND id = ?", storeID, id).
		First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindAllForStore finds orders for a store, newest first, optionally
// restricted to an exact status
func (r *GormOrderRepository) FindAllForStore(ctx context.Context, storeID uuid.UUID, status ordering.Status) ([]ordering.Order, error) {
	query := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at DESC")

	if status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []ordering.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save updates an existing order
func (r *GormOrderRepository) Save(ctx context.Context, order *ordering.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

// CountForStore counts orders belonging to a store
func (r *GormOrderRepository) CountForStore(ctx context.Context, storeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ordering.Order{}).
		Where("store_id = ?", storeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
