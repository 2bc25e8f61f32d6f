package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name        string           `json:"name" binding:"required,min=1,max=200"`
	Description string           `json:"description" binding:"max=5000"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Inventory   int              `json:"inventory" binding:"min=0"`
	Images      []string         `json:"images"`
}

// UpdateProductRequest represents a partial update of a product.
// Nil fields are left unchanged.
type UpdateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string          `json:"description" binding:"omitempty,max=5000"`
	Price       *decimal.Decimal `json:"price"`
	Inventory   *int             `json:"inventory" binding:"omitempty,min=0"`
	Images      []string         `json:"images"`
}

// ListProductsFilter represents product list query parameters
type ListProductsFilter struct {
	Search string `form:"search"`
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	StoreID     uuid.UUID       `json:"storeId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Inventory   int             `json:"inventory"`
	Images      []string        `json:"images"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// PageMeta is the pagination metadata block returned with product lists
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// ProductListResponse is the paginated product list payload
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Meta     PageMeta          `json:"meta"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return ProductResponse{
		ID:          p.ID,
		StoreID:     p.StoreID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Inventory:   p.Inventory,
		Images:      images,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponses converts a slice of domain Products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, ToProductResponse(&products[i]))
	}
	return out
}
