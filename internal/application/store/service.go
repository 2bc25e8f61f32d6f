package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/store"
	"go.uber.org/zap"
)

// Service handles store registry operations
type Service struct {
	storeRepo store.Repository
	logger    *zap.Logger
}

// NewService creates a new store Service
func NewService(storeRepo store.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		storeRepo: storeRepo,
		logger:    logger,
	}
}

// Create creates a new store. Store names are globally unique; a duplicate
// name is rejected before the insert and the unique index backs up the
// check under concurrency.
func (s *Service) Create(ctx context.Context, req CreateStoreRequest) (*StoreResponse, error) {
	exists, err := s.storeRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A store with this name already exists")
	}

	st, err := store.NewStore(req.Name, req.Description, req.Domain)
	if err != nil {
		return nil, err
	}

	// Slug collisions are possible after folding even with a unique name
	// ("Café" and "Cafe"); disambiguate with a short ID suffix.
	slugTaken, err := s.storeRepo.ExistsBySlug(ctx, st.Slug)
	if err != nil {
		return nil, err
	}
	if slugTaken {
		st.Slug = st.Slug + "-" + st.ID.String()[:8]
	}

	if err := s.storeRepo.Save(ctx, st); err != nil {
		return nil, err
	}

	s.logger.Info("store created",
		zap.String("store_id", st.ID.String()),
		zap.String("slug", st.Slug),
	)

	resp := ToStoreResponse(st)
	return &resp, nil
}

// List returns all stores in insertion order
func (s *Service) List(ctx context.Context) ([]StoreResponse, error) {
	stores, err := s.storeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToStoreResponses(stores), nil
}

// GetByID retrieves a store by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*StoreResponse, error) {
	st, err := s.storeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToStoreResponse(st)
	return &resp, nil
}

// GetBySlug retrieves a store by its public slug
func (s *Service) GetBySlug(ctx context.Context, slug string) (*StoreResponse, error) {
	st, err := s.storeRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	resp := ToStoreResponse(st)
	return &resp, nil
}
