package store

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for store persistence
type Repository interface {
	// FindByID finds a store by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Store, error)

	// FindBySlug finds a store by its public slug
	FindBySlug(ctx context.Context, slug string) (*Store, error)

	// FindAll returns all stores in insertion order
	FindAll(ctx context.Context) ([]Store, error)

	// ExistsByName checks whether a store with the given name exists
	ExistsByName(ctx context.Context, name string) (bool, error)

	// ExistsBySlug checks whether a store with the given slug exists
	ExistsBySlug(ctx context.Context, slug string) (bool, error)

	// ExistsByID checks whether a store with the given ID exists
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// Save creates or updates a store
	Save(ctx context.Context, store *Store) error

	// Count counts all stores
	Count(ctx context.Context) (int64, error)
}
