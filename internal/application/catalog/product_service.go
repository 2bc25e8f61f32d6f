package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/store"
	"go.uber.org/zap"
)

// CacheInvalidator invalidates cached storefront projections after catalog
// mutations. Implemented by the storefront cache; a nil invalidator is a
// no-op.
type CacheInvalidator interface {
	InvalidateStore(ctx context.Context, storeID uuid.UUID)
}

// ProductService handles store-scoped product operations
type ProductService struct {
	productRepo catalog.ProductRepository
	storeRepo   store.Repository
	invalidator CacheInvalidator
	logger      *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	storeRepo store.Repository,
	invalidator CacheInvalidator,
	logger *zap.Logger,
) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		productRepo: productRepo,
		storeRepo:   storeRepo,
		invalidator: invalidator,
		logger:      logger,
	}
}

// Create creates a new product in the given store
func (s *ProductService) Create(ctx context.Context, storeID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	if err := s.requireStore(ctx, storeID); err != nil {
		return nil, err
	}
	if req.Price == nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product price is required")
	}

	exists, err := s.productRepo.ExistsByName(ctx, storeID, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A product with this name already exists in this store")
	}

	product, err := catalog.NewProduct(storeID, req.Name, req.Description, *req.Price, req.Inventory, req.Images)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	s.invalidate(ctx, storeID)

	s.logger.Info("product created",
		zap.String("store_id", storeID.String()),
		zap.String("product_id", product.ID.String()),
	)

	resp := ToProductResponse(product)
	return &resp, nil
}

// List returns a page of the store's products, optionally filtered by a
// case-insensitive substring search on name and description. The meta block
// is present even when the caller relies on default pagination.
func (s *ProductService) List(ctx context.Context, storeID uuid.UUID, filter ListProductsFilter) (*ProductListResponse, error) {
	if err := s.requireStore(ctx, storeID); err != nil {
		return nil, err
	}

	domainFilter := shared.Filter{
		Page:   filter.Page,
		Limit:  filter.Limit,
		Search: filter.Search,
	}
	domainFilter.Normalize()

	products, err := s.productRepo.FindAllForStore(ctx, storeID, domainFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.productRepo.CountForStore(ctx, storeID, domainFilter)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / domainFilter.Limit
	if int(total)%domainFilter.Limit > 0 {
		totalPages++
	}

	return &ProductListResponse{
		Products: ToProductResponses(products),
		Meta: PageMeta{
			Total:      total,
			Page:       domainFilter.Page,
			Limit:      domainFilter.Limit,
			TotalPages: totalPages,
		},
	}, nil
}

// Update applies a partial update to a product. A product belonging to a
// different store is indistinguishable from a nonexistent one.
func (s *ProductService) Update(ctx context.Context, storeID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	if err := s.requireStore(ctx, storeID); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByIDForStore(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != product.Name {
		exists, err := s.productRepo.ExistsByName(ctx, storeID, *req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "A product with this name already exists in this store")
		}
		if err := product.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		product.SetDescription(*req.Description)
	}
	if req.Price != nil {
		if err := product.SetPrice(*req.Price); err != nil {
			return nil, err
		}
	}
	if req.Inventory != nil {
		if err := product.SetInventory(*req.Inventory); err != nil {
			return nil, err
		}
	}
	if req.Images != nil {
		product.SetImages(req.Images)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	s.invalidate(ctx, storeID)

	resp := ToProductResponse(product)
	return &resp, nil
}

// Delete removes a product from the store. Same not-found semantics as
// Update: a cross-store ID looks nonexistent.
func (s *ProductService) Delete(ctx context.Context, storeID, productID uuid.UUID) error {
	if err := s.requireStore(ctx, storeID); err != nil {
		return err
	}

	if _, err := s.productRepo.FindByIDForStore(ctx, storeID, productID); err != nil {
		return err
	}
	if err := s.productRepo.DeleteForStore(ctx, storeID, productID); err != nil {
		return err
	}
	s.invalidate(ctx, storeID)

	s.logger.Info("product deleted",
		zap.String("store_id", storeID.String()),
		zap.String("product_id", productID.String()),
	)
	return nil
}

func (s *ProductService) requireStore(ctx context.Context, storeID uuid.UUID) error {
	exists, err := s.storeRepo.ExistsByID(ctx, storeID)
	if err != nil {
		return err
	}
	if !exists {
		return shared.NewDomainError("NOT_FOUND", "Store not found")
	}
	return nil
}

func (s *ProductService) invalidate(ctx context.Context, storeID uuid.UUID) {
	if s.invalidator != nil {
		s.invalidator.InvalidateStore(ctx, storeID)
	}
}
