package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/store"
)

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) FindByIDForStore(ctx context.Context, storeID, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, storeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *mockProductRepository) FindByIDsForStore(ctx context.Context, storeID uuid.UUID, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, storeID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepository) FindAllForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, storeID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepository) CountForStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, storeID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepository) ExistsByName(ctx context.Context, storeID uuid.UUID, name string) (bool, error) {
	args := m.Called(ctx, storeID, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepository) DeleteForStore(ctx context.Context, storeID, id uuid.UUID) error {
	args := m.Called(ctx, storeID, id)
	return args.Error(0)
}

type mockStoreRepository struct {
	mock.Mock
}

func (m *mockStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*store.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

func (m *mockStoreRepository) FindBySlug(ctx context.Context, slug string) (*store.Store, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

func (m *mockStoreRepository) FindAll(ctx context.Context) ([]store.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Store), args.Error(1)
}

func (m *mockStoreRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockStoreRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *mockStoreRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockStoreRepository) Save(ctx context.Context, st *store.Store) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

func (m *mockStoreRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type recordingInvalidator struct {
	invalidated []uuid.UUID
}

func (r *recordingInvalidator) InvalidateStore(_ context.Context, storeID uuid.UUID) {
	r.invalidated = append(r.invalidated, storeID)
}

func decimalPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func newTestProductService(productRepo *mockProductRepository, storeRepo *mockStoreRepository, inv *recordingInvalidator) *ProductService {
	var invalidator CacheInvalidator
	if inv != nil {
		invalidator = inv
	}
	return NewProductService(productRepo, storeRepo, invalidator, nil)
}

func TestProductService_Create_Success(t *testing.T) {
	productRepo := new(mockProductRepository)
	storeRepo := new(mockStoreRepository)
	inv := &recordingInvalidator{}
	service := newTestProductService(productRepo, storeRepo, inv)

	storeID := uuid.New()
	storeRepo.On("ExistsByID", mock.Anything, storeID).Return(true, nil)
	productRepo.On("ExistsByName", mock.Anything, storeID, "Widget").Return(false, nil)
	productRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

	resp, err := service.Create(context.Background(), storeID, CreateProductRequest{
		Name:      "Widget",
		Price:     decimalPtr(9.99),
		Inventory: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, "Widget", resp.Name)
	assert.Equal(t, storeID, resp.StoreID)
	assert.Equal(t, []uuid.UUID{storeID}, inv.invalidated)
}

func TestProductService_Create_StoreNotFound(t *testing.T) {
	productRepo := new(mockProductRepository)
	storeRepo := new(mockStoreRepository)
	service := newTestProductService(productRepo, storeRepo, nil)

	storeID := uuid.New()
	storeRepo.On("ExistsByID", mock.Anything, storeID).Return(false, nil)

	_, err := service.Create(context.Background(), storeID, CreateProductRequest{
		Name:  "Widget",
		Price: decimalPtr(9.99),
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, "Store not found", domainErr.Message)
}

func TestProductService_Create_DuplicateName(t *testing.T) {
	productRepo := new(mockProductRepository)
	storeRepo := new(mockStoreRepository)
	service := newTestProductService(productRepo, storeRepo, nil)

	storeID := uuid.New()
	storeRepo.On("ExistsByID", mock.Anything, storeID).Return(true, nil)
	productRepo.On("ExistsByName", mock.Anything, storeID, "Widget").Return(true, nil)

	_, err := service.Create(context.Background(), storeID, CreateProductRequest{
		Name:  "Widget",
		Price: decimalPtr(9.99),
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	assert.Equal(t, "A product with this name already exists in this store", domainErr.Message)
}

func TestProductService_Create_MissingPrice(t *testing.T) {
	productRepo := new(mockProductRepository)
	storeRepo := new(mockStoreRepository)
	service := newTestProductService(productRepo, storeRepo, nil)

	storeID := uuid.New()
	storeRepo.On("ExistsByID", mock.Anything, storeID).Return(true, nil)

	_, err := service.Create(context.Background(), storeID, CreateProductRequest{Name: "Widget"})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
}

func TestProductService_List_PaginationMeta(t *testing.T) {
	productRepo := new(mockProductRepository)
	storeRepo := new(mockStoreRepository)
	service := newTestProductService(productRepo, storeRepo, nil)

	storeID := uuid.New()
	p, _ := catalog.NewProduct(storeID, "Widget", "", decimal.NewFromInt(10), 1, nil)

	storeRepo.On("ExistsByID", mock.Anything, storeID).Return(true, nil)
	expectedFilter := shared.Filter{Page: 2, Limit: 1}
	productRepo.On("FindAllForStore", mock.Anything, storeID, expectedFilter).Return([]catalog.Product{*p}, nil)
	productRepo.On("CountForStore", mock.Anything, storeID, expectedFilter).Return(int64(3), nil)

	resp, err := service.List(context.Background(), storeID, ListProductsFilter{Page: 2, Limit: 1})
	require.NoError(t, err)

	assert.Len(t, resp.Products, 1)
	assert.Equal(t, int64(3), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 1, resp.Meta.Limit)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}

func TestProductService_List_DefaultsApplied(t *testing.T) {
	productRepo := new(mockProductRepository)
	storeRepo := new(mockStoreRepository)
	service := newTestProductService(productRepo, storeRepo, nil)

	storeID := uuid.New()
	storeRepo.On("ExistsByID", mock.Anything, storeID).Return(true, nil)
	expectedFilter := shared.Filter{Page: 1, Limit: 20}
	productRepo.On("FindAllForStore", mock.Anything, storeID, expectedFilter).Return([]catalog.Product{}, nil)
	productRepo.On("CountForStore", mock.Anything, storeID, expectedFilter).Return(int64(0), nil)

	resp, err := service.List(context.Background(), storeID, ListProductsFilter{})
	require.NoError(t, err)

	assert.NotNil(t, resp.Products)
	assert.Equal(t, 1, resp.Meta.Page)
	assert.Equal(t, 20, resp.Meta.Limit)
	assert.Equal(t, 0, resp.Meta.TotalPages)
}

func TestProductService_Update_Success(t *testing.T) {
	productRepo := new(mockProductRepository)
	storeRepo := new(mockStoreRepository)
	inv := &recordingInvalidator{}
	service := newTestProductService(productRepo, storeRepo, inv)

	storeID := uuid.New()
	p, _ := catalog.NewProduct(storeID, "Widget", "", decimal.NewFromInt(10), 1, nil)

	storeRepo.On("ExistsByID", mock.Anything, storeID).Return(true, nil)
	productRepo.On("FindByIDForStore", mock.Anything, storeID, p.ID).Return(p, nil)
	productRepo.On("ExistsByName", mock.Anything, storeID, "Gadget").Return(false, nil)
	productRepo.On("Save", mock.Anything, p).Return(nil)

	resp, err := service.Update(context.Background(), storeID, p.ID, UpdateProductRequest{
		Name:      strPtr("Gadget"),
		Price:     decimalPtr(19.99),
		Inventory: intPtr(7),
	})
	require.NoError(t, err)

	assert.Equal(t, "Gadget", resp.Name)
	assert.True(t, resp.Price.Equal(decimal.NewFromFloat(19.99)))
	assert.Equal(t, 7, resp.Inventory)
	assert.Len(t, inv.invalidated, 1)
}

func TestProductService_Update_CrossStoreLooksNotFound(t *testing.T) {
	productRepo := new(mockProductRepository)
	storeRepo := new(mockStoreRepository)
	service := newTestProductService(productRepo, storeRepo, nil)

	storeID := uuid.New()
	productID := uuid.New()
	storeRepo.On("ExistsByID", mock.Anything, storeID).Return(true, nil)
	productRepo.On("FindByIDForStore", mock.Anything, storeID, productID).Return(nil, shared.ErrNotFound)

	_, err := service.Update(context.Background(), storeID, productID, UpdateProductRequest{Name: strPtr("Gadget")})
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestProductService_Update_SameNameSkipsUniquenessCheck(t *testing.T) {
	productRepo := new(mockProductRepository)
	storeRepo := new(mockStoreRepository)
	service := newTestProductService(productRepo, storeRepo, nil)

	storeID := uuid.New()
	p, _ := catalog.NewProduct(storeID, "Widget", "", decimal.NewFromInt(10), 1, nil)

	storeRepo.On("ExistsByID", mock.Anything, storeID).Return(true, nil)
	productRepo.On("FindByIDForStore", mock.Anything, storeID, p.ID).Return(p, nil)
	productRepo.On("Save", mock.Anything, p).Return(nil)

	_, err := service.Update(context.Background(), storeID, p.ID, UpdateProductRequest{Name: strPtr("Widget")})
	require.NoError(t, err)
	productRepo.AssertNotCalled(t, "ExistsByName", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_Delete_Success(t *testing.T) {
	productRepo := new(mockProductRepository)
	storeRepo := new(mockStoreRepository)
	inv := &recordingInvalidator{}
	service := newTestProductService(productRepo, storeRepo, inv)

	storeID := uuid.New()
	p, _ := catalog.NewProduct(storeID, "Widget", "", decimal.NewFromInt(10), 1, nil)

	storeRepo.On("ExistsByID", mock.Anything, storeID).Return(true, nil)
	productRepo.On("FindByIDForStore", mock.Anything, storeID, p.ID).Return(p, nil)
	productRepo.On("DeleteForStore", mock.Anything, storeID, p.ID).Return(nil)

	require.NoError(t, service.Delete(context.Background(), storeID, p.ID))
	assert.Equal(t, []uuid.UUID{storeID}, inv.invalidated)
}

func TestProductService_Delete_NotFound(t *testing.T) {
	productRepo := new(mockProductRepository)
	storeRepo := new(mockStoreRepository)
	inv := &recordingInvalidator{}
	service := newTestProductService(productRepo, storeRepo, inv)

	storeID := uuid.New()
	productID := uuid.New()
	storeRepo.On("ExistsByID", mock.Anything, storeID).Return(true, nil)
	productRepo.On("FindByIDForStore", mock.Anything, storeID, productID).Return(nil, shared.ErrNotFound)

	err := service.Delete(context.Background(), storeID, productID)
	require.ErrorIs(t, err, shared.ErrNotFound)
	assert.Empty(t, inv.invalidated)
}
