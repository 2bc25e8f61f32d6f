package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	storeapp "github.com/storefront/backend/internal/application/store"
)

// StoreHandler handles store management endpoints
type StoreHandler struct {
	BaseHandler
	storeService *storeapp.Service
}

// NewStoreHandler creates a new StoreHandler
func NewStoreHandler(storeService *storeapp.Service) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// RegisterRoutes registers the store endpoints
func (h *StoreHandler) RegisterRoutes(rg *gin.RouterGroup) {
	stores := rg.Group("/stores")
	{
		stores.POST("", h.Create)
		stores.GET("", h.List)
		stores.GET("/:id", h.GetByID)
	}
}

// Create creates a new store
func (h *StoreHandler) Create(c *gin.Context) {
	var req storeapp.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	resp, err := h.storeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// List returns all stores
func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.storeService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stores)
}

// GetByID returns a single store
func (h *StoreHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.NotFound(c, "Store not found")
		return
	}

	resp, err := h.storeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
