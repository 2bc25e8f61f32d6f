package ordering

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/ordering"
)

// OrderItemRequest is a single line of an order creation request
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// CustomerInfoRequest holds the buyer contact details of an order request
type CustomerInfoRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Email   string `json:"email" binding:"omitempty,email,max=200"`
	Phone   string `json:"phone" binding:"max=50"`
	Address string `json:"address" binding:"max=1000"`
}

// CreateOrderRequest represents a request to place an order
type CreateOrderRequest struct {
	Items        []OrderItemRequest  `json:"items"`
	CustomerInfo CustomerInfoRequest `json:"customerInfo"`
}

// UpdateOrderStatusRequest represents an order status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// ListOrdersFilter represents order list query parameters
type ListOrdersFilter struct {
	Status string `form:"status" binding:"omitempty,oneof=pending processing shipped delivered cancelled"`
}

// OrderItemResponse is a line item in an order response
type OrderItemResponse struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// CustomerInfoResponse mirrors the stored customer details
type CustomerInfoResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID           uuid.UUID            `json:"id"`
	StoreID      uuid.UUID            `json:"storeId"`
	OrderNumber  string               `json:"orderNumber"`
	Items        []OrderItemResponse  `json:"items"`
	CustomerInfo CustomerInfoResponse `json:"customerInfo"`
	Total        decimal.Decimal      `json:"total"`
	Status       string               `json:"status"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

// OrderListResponse is the order list payload
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(o *ordering.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}
	return OrderResponse{
		ID:          o.ID,
		StoreID:     o.StoreID,
		OrderNumber: o.OrderNumber,
		Items:       items,
		CustomerInfo: CustomerInfoResponse{
			Name:    o.CustomerInfo.Name,
			Email:   o.CustomerInfo.Email,
			Phone:   o.CustomerInfo.Phone,
			Address: o.CustomerInfo.Address,
		},
		Total:     o.Total,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

// ToOrderResponses converts a slice of domain Orders
func ToOrderResponses(orders []ordering.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, ToOrderResponse(&orders[i]))
	}
	return out
}
