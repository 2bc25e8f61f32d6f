package ordering

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/ordering"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/store"
	"go.uber.org/zap"
)

// Service handles store-scoped order operations
type Service struct {
	orderRepo   ordering.Repository
	productRepo catalog.ProductRepository
	storeRepo   store.Repository
	logger      *zap.Logger
}

// NewService creates a new order Service
func NewService(
	orderRepo ordering.Repository,
	productRepo catalog.ProductRepository,
	storeRepo store.Repository,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		storeRepo:   storeRepo,
		logger:      logger,
	}
}

// Create places a new order. Every item must resolve to a product owned by
// the same store; an unresolvable or cross-store product ID is a request
// validation error (400), not a resource not-found, so the caller learns
// nothing about other stores' catalogs. The total is computed from current
// product prices.
func (s *Service) Create(ctx context.Context, storeID uuid.UUID, req CreateOrderRequest) (*OrderResponse, error) {
	if err := s.requireStore(ctx, storeID); err != nil {
		return nil, err
	}

	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Order must contain at least one item")
	}

	ids := make([]uuid.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_INPUT", "Order item quantity must be positive")
		}
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.FindByIDsForStore(ctx, storeID, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*catalog.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	items := make([]ordering.Item, 0, len(req.Items))
	for _, item := range req.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, shared.NewDomainError("INVALID_INPUT", "Order item references a product that does not exist in this store")
		}
		items = append(items, ordering.Item{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
		})
	}

	order, err := ordering.NewOrder(storeID, items, ordering.CustomerInfo{
		Name:    req.CustomerInfo.Name,
		Email:   req.CustomerInfo.Email,
		Phone:   req.CustomerInfo.Phone,
		Address: req.CustomerInfo.Address,
	})
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		zap.String("store_id", storeID.String()),
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber),
		zap.String("total", order.Total.String()),
	)

	resp := ToOrderResponse(order)
	return &resp, nil
}

// List returns the store's orders, optionally filtered by exact status
func (s *Service) List(ctx context.Context, storeID uuid.UUID, filter ListOrdersFilter) (*OrderListResponse, error) {
	if err := s.requireStore(ctx, storeID); err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindAllForStore(ctx, storeID, ordering.Status(filter.Status))
	if err != nil {
		return nil, err
	}

	return &OrderListResponse{Orders: ToOrderResponses(orders)}, nil
}

// UpdateStatus changes an order's status. An order id from another store is
// reported as not found.
func (s *Service) UpdateStatus(ctx context.Context, storeID, orderID uuid.UUID, req UpdateOrderStatusRequest) (*OrderResponse, error) {
	if err := s.requireStore(ctx, storeID); err != nil {
		return nil, err
	}
	if req.Status == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Order status is required")
	}

	order, err := s.orderRepo.FindByIDForStore(ctx, storeID, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.UpdateStatus(ordering.Status(req.Status)); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	resp := ToOrderResponse(order)
	return &resp, nil
}

func (s *Service) requireStore(ctx context.Context, storeID uuid.UUID) error {
	exists, err := s.storeRepo.ExistsByID(ctx, storeID)
	if err != nil {
		return err
	}
	if !exists {
		return shared.NewDomainError("NOT_FOUND", "Store not found")
	}
	return nil
}
