package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/store"
)

// CreateStoreRequest represents a request to create a new store
type CreateStoreRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
	Domain      string `json:"domain" binding:"max=200"`
}

// StoreResponse represents a store in API responses
type StoreResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Domain      string    `json:"domain"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToStoreResponse converts a domain Store to StoreResponse
func ToStoreResponse(s *store.Store) StoreResponse {
	return StoreResponse{
		ID:          s.ID,
		Name:        s.Name,
		Slug:        s.Slug,
		Domain:      s.Domain,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToStoreResponses converts a slice of domain Stores
func ToStoreResponses(stores []store.Store) []StoreResponse {
	out := make([]StoreResponse, 0, len(stores))
	for i := range stores {
		out = append(out, ToStoreResponse(&stores[i]))
	}
	return out
}
