package store

import (
	"strings"

	"github.com/storefront/backend/internal/domain/shared"
)

// Store represents a storefront tenant. It is the aggregate root that owns
// products, orders and uploaded images; its name is globally unique and its
// slug is the public storefront lookup key.
type Store struct {
	shared.BaseAggregateRoot
	Name        string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Slug        string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Domain      string `gorm:"type:varchar(200)"`
	Description string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Store) TableName() string {
	return "stores"
}

// NewStore creates a new store with a slug derived from its name
func NewStore(name, description, domain string) (*Store, error) {
	name = strings.TrimSpace(name)
	if err := validateStoreName(name); err != nil {
		return nil, err
	}

	return &Store{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Slug:              Slugify(name),
		Domain:            strings.TrimSpace(domain),
		Description:       description,
	}, nil
}

// Update updates the store's mutable information. Name and slug are
// immutable after creation: the slug is a public URL.
func (s *Store) Update(description, domain string) {
	s.Description = description
	s.Domain = strings.TrimSpace(domain)
	s.Touch()
}

func validateStoreName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Store name is required")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_INPUT", "Store name cannot exceed 200 characters")
	}
	if Slugify(name) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Store name must contain at least one alphanumeric character")
	}
	return nil
}
