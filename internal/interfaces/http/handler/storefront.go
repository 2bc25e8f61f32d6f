package handler

import (
	"github.com/gin-gonic/gin"
	storefrontapp "github.com/storefront/backend/internal/application/storefront"
)

// StorefrontHandler serves the public storefront projection
type StorefrontHandler struct {
	BaseHandler
	storefrontService *storefrontapp.Service
}

// NewStorefrontHandler creates a new StorefrontHandler
func NewStorefrontHandler(storefrontService *storefrontapp.Service) *StorefrontHandler {
	return &StorefrontHandler{storefrontService: storefrontService}
}

// RegisterRoutes registers the storefront endpoint
func (h *StorefrontHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/storefront/:slug", h.GetBySlug)
}

// GetBySlug returns a store and its full catalog by slug
func (h *StorefrontHandler) GetBySlug(c *gin.Context) {
	resp, err := h.storefrontService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
