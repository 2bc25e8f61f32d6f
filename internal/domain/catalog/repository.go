package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence.
// Every lookup is scoped by store ID: a product reached through the wrong
// store's scope is reported as not found, never as forbidden.
type ProductRepository interface {
	// FindByIDForStore finds a product by ID within a store
	FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*Product, error)

	// FindByIDsForStore finds multiple products by ID within a store.
	// IDs that do not resolve within the store are silently absent from
	// the result.
	FindByIDsForStore(ctx context.Context, storeID uuid.UUID, ids []uuid.UUID) ([]Product, error)

	// FindAllForStore finds products for a store, applying search and
	// pagination from the filter
	FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]Product, error)

	// CountForStore counts products for a store matching the filter's search
	CountForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (int64, error)

	// ExistsByName checks whether a product with the given name exists in the store
	ExistsByName(ctx context.Context, storeID uuid.UUID, name string) (bool, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// DeleteForStore deletes a product within a store
	DeleteForStore(ctx context.Context, storeID, id uuid.UUID) error
}
