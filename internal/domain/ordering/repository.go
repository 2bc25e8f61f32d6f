package ordering

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for order persistence
type Repository interface {
	// Create saves a new order, allocating its per-store order number
	// atomically with the insert
	Create(ctx context.Context, order *Order) error

	// FindByIDForStore finds an order by ID within a store
	FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*Order, error)

	// FindAllForStore finds orders for a store, newest first, optionally
	// restricted to an exact status
	FindAllForStore(ctx context.Context, storeID uuid.UUID, status Status) ([]Order, error)

	// Save updates an existing order
	Save(ctx context.Context, order *Order) error

	// CountForStore counts orders belonging to a store
	CountForStore(ctx context.Context, storeID uuid.UUID) (int64, error)
}
