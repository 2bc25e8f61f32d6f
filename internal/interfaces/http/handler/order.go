package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	orderingapp "github.com/storefront/backend/internal/application/ordering"
)

// OrderHandler handles order endpoints, all scoped by store
type OrderHandler struct {
	BaseHandler
	orderService *orderingapp.Service
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *orderingapp.Service) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// RegisterRoutes registers the order endpoints
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders/:storeId")
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.PUT("/order/:orderId", h.UpdateStatus)
	}
}

// Create places an order against a store's catalog
func (h *OrderHandler) Create(c *gin.Context) {
	storeID, ok := parseStoreID(c)
	if !ok {
		h.NotFound(c, "Store not found")
		return
	}

	var req orderingapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	resp, err := h.orderService.Create(c.Request.Context(), storeID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// List returns a store's orders, optionally filtered by status
func (h *OrderHandler) List(c *gin.Context) {
	storeID, ok := parseStoreID(c)
	if !ok {
		h.NotFound(c, "Store not found")
		return
	}

	var filter orderingapp.ListOrdersFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	resp, err := h.orderService.List(c.Request.Context(), storeID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// UpdateStatus transitions an order's status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	storeID, ok := parseStoreID(c)
	if !ok {
		h.NotFound(c, "Store not found")
		return
	}

	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		h.NotFound(c, "Order not found")
		return
	}

	var req orderingapp.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	resp, err := h.orderService.UpdateStatus(c.Request.Context(), storeID, orderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
