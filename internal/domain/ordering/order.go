package ordering

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// Status represents the fulfillment status of an order
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// IsValid reports whether s is a known order status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Item is a line item of an order. Price is the unit price snapshot taken
// from the product at order creation; later price changes do not affect
// existing orders.
type Item struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Subtotal returns price times quantity for this line
func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CustomerInfo holds the buyer's contact details. Only the name is required.
type CustomerInfo struct {
	Name    string `gorm:"type:varchar(200);not null" json:"name"`
	Email   string `gorm:"type:varchar(200)" json:"email,omitempty"`
	Phone   string `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Address string `gorm:"type:text" json:"address,omitempty"`
}

// Order represents a customer order placed against a store. The total is
// always derived from the item snapshots, never supplied by the caller.
type Order struct {
	shared.StoreAggregateRoot
	OrderNumber  string          `gorm:"type:varchar(50);not null"`
	Items        []Item          `gorm:"serializer:json"`
	CustomerInfo CustomerInfo    `gorm:"embedded;embeddedPrefix:customer_"`
	Total        decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Status       Status          `gorm:"type:varchar(20);not null;default:'pending'"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a pending order from resolved item snapshots. The order
// number is assigned by the repository when the order is first saved.
func NewOrder(storeID uuid.UUID, items []Item, customer CustomerInfo) (*Order, error) {
	if len(items) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Order must contain at least one item")
	}

	total := decimal.Zero
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_INPUT", "Order item quantity must be positive")
		}
		total = total.Add(item.Subtotal())
	}
	if !total.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Order total must be positive")
	}

	customer.Name = strings.TrimSpace(customer.Name)
	if customer.Name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer name is required")
	}

	return &Order{
		StoreAggregateRoot: shared.NewStoreAggregateRoot(storeID),
		Items:              items,
		CustomerInfo:       customer,
		Total:              total,
		Status:             StatusPending,
	}, nil
}

// UpdateStatus moves the order to a new status
func (o *Order) UpdateStatus(status Status) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Unknown order status: "+string(status))
	}
	o.Status = status
	o.Touch()
	return nil
}
