package storefront

import (
	"context"

	"github.com/google/uuid"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	storeapp "github.com/storefront/backend/internal/application/store"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/store"
	"go.uber.org/zap"
)

// Response is the public storefront projection: the store plus its full
// product list. It is read-only and unpaginated.
type Response struct {
	Store    storeapp.StoreResponse       `json:"store"`
	Products []catalogapp.ProductResponse `json:"products"`
}

// ProjectionCache caches storefront product projections per store.
// Implementations: Redis-backed and in-memory.
type ProjectionCache interface {
	// Get returns the cached projection for a store, or ok=false on miss
	Get(ctx context.Context, storeID uuid.UUID) (*Response, bool)

	// Set stores the projection for a store
	Set(ctx context.Context, storeID uuid.UUID, resp *Response)

	// InvalidateStore drops the cached projection for a store
	InvalidateStore(ctx context.Context, storeID uuid.UUID)
}

// Service serves the public storefront projection keyed by slug
type Service struct {
	storeRepo   store.Repository
	productRepo catalog.ProductRepository
	cache       ProjectionCache
	logger      *zap.Logger
}

// NewService creates a new storefront Service. cache may be nil, in which
// case every request hits the database.
func NewService(
	storeRepo store.Repository,
	productRepo catalog.ProductRepository,
	cache ProjectionCache,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		storeRepo:   storeRepo,
		productRepo: productRepo,
		cache:       cache,
		logger:      logger,
	}
}

// GetBySlug resolves a store by slug and returns it with its complete
// product catalog. The slug lookup always hits the database so an unknown
// slug is a 404 regardless of cache state; the product projection is served
// from cache when warm. Catalog mutations invalidate the cache, preserving
// read-your-writes per store.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*Response, error) {
	st, err := s.storeRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, st.ID); ok {
			return cached, nil
		}
	}

	// The storefront view is unpaginated: fetch the full catalog.
	filter := shared.Filter{Page: 1, Limit: 100}
	var products []catalog.Product
	for {
		page, err := s.productRepo.FindAllForStore(ctx, st.ID, filter)
		if err != nil {
			return nil, err
		}
		products = append(products, page...)
		if len(page) < filter.Limit {
			break
		}
		filter.Page++
	}

	resp := &Response{
		Store:    storeapp.ToStoreResponse(st),
		Products: catalogapp.ToProductResponses(products),
	}

	if s.cache != nil {
		s.cache.Set(ctx, st.ID, resp)
	}

	return resp, nil
}
