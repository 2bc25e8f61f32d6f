package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// Product represents a sellable item in a store's catalog.
// Names are unique within the owning store only; the same name may exist
// in any number of other stores.
type Product struct {
	shared.StoreAggregateRoot
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Inventory   int             `gorm:"not null;default:0"`
	Images      []string        `gorm:"serializer:json"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product under the given store
func NewProduct(storeID uuid.UUID, name, description string, price decimal.Decimal, inventory int, images []string) (*Product, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := validateInventory(inventory); err != nil {
		return nil, err
	}
	if images == nil {
		images = []string{}
	}

	return &Product{
		StoreAggregateRoot: shared.NewStoreAggregateRoot(storeID),
		Name:               name,
		Description:        description,
		Price:              price,
		Inventory:          inventory,
		Images:             images,
	}, nil
}

// Rename changes the product name. Uniqueness within the store is enforced
// at the persistence layer.
func (p *Product) Rename(name string) error {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return err
	}
	p.Name = name
	p.Touch()
	return nil
}

// SetDescription updates the product description
func (p *Product) SetDescription(description string) {
	p.Description = description
	p.Touch()
}

// SetPrice updates the product price
func (p *Product) SetPrice(price decimal.Decimal) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	p.Price = price
	p.Touch()
	return nil
}

// SetInventory updates the on-hand inventory count
func (p *Product) SetInventory(inventory int) error {
	if err := validateInventory(inventory); err != nil {
		return err
	}
	p.Inventory = inventory
	p.Touch()
	return nil
}

// SetImages replaces the ordered image URL list
func (p *Product) SetImages(images []string) {
	if images == nil {
		images = []string{}
	}
	p.Images = images
	p.Touch()
}

func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Product name is required")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_INPUT", "Product name cannot exceed 200 characters")
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return shared.NewDomainError("INVALID_INPUT", "Product price must be positive")
	}
	return nil
}

func validateInventory(inventory int) error {
	if inventory < 0 {
		return shared.NewDomainError("INVALID_INPUT", "Product inventory cannot be negative")
	}
	return nil
}
