package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// ProductHandler handles product catalog endpoints, all scoped by store
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// RegisterRoutes registers the product endpoints
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products/:storeId")
	{
		products.POST("", h.Create)
		products.GET("", h.List)
		products.PUT("/product/:productId", h.Update)
		products.DELETE("/product/:productId", h.Delete)
	}
}

// Create creates a product in a store
func (h *ProductHandler) Create(c *gin.Context) {
	storeID, ok := parseStoreID(c)
	if !ok {
		h.NotFound(c, "Store not found")
		return
	}

	var req catalogapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	resp, err := h.productService.Create(c.Request.Context(), storeID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// List returns a store's products with search and pagination
func (h *ProductHandler) List(c *gin.Context) {
	storeID, ok := parseStoreID(c)
	if !ok {
		h.NotFound(c, "Store not found")
		return
	}

	var filter catalogapp.ListProductsFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	resp, err := h.productService.List(c.Request.Context(), storeID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update modifies a product within a store
func (h *ProductHandler) Update(c *gin.Context) {
	storeID, ok := parseStoreID(c)
	if !ok {
		h.NotFound(c, "Store not found")
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		h.NotFound(c, "Product not found")
		return
	}

	var req catalogapp.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	resp, err := h.productService.Update(c.Request.Context(), storeID, productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes a product within a store
func (h *ProductHandler) Delete(c *gin.Context) {
	storeID, ok := parseStoreID(c)
	if !ok {
		h.NotFound(c, "Store not found")
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		h.NotFound(c, "Product not found")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), storeID, productID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.DeletedResponse{Deleted: true})
}
