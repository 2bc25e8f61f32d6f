package shared

import (
	"time"

	"github.com/google/uuid"
)

// BaseAggregateRoot adds an optimistic-lock version to BaseEntity.
// The version starts at 1 and moves with every mutation via Touch.
type BaseAggregateRoot struct {
	BaseEntity
	Version int `gorm:"not null;default:1"`
}

// Touch records a state change: bumps the version and refreshes the
// update timestamp
func (a *BaseAggregateRoot) Touch() {
	a.Version++
	a.UpdatedAt = time.Now()
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}

// StoreAggregateRoot extends BaseAggregateRoot with store (tenant) scoping.
// Every resource owned by a store embeds this; all persistence queries
// filter on StoreID so one store's resources are never reachable through
// another store's scope.
type StoreAggregateRoot struct {
	BaseAggregateRoot
	StoreID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// NewStoreAggregateRoot creates a new store-scoped aggregate root
func NewStoreAggregateRoot(storeID uuid.UUID) StoreAggregateRoot {
	return StoreAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		StoreID:           storeID,
	}
}
