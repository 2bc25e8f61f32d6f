package catalog

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain/shared"
)

func createTestProduct(t *testing.T) *Product {
	p, err := NewProduct(uuid.New(), "Widget", "A widget", decimal.NewFromFloat(9.99), 5, nil)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("creates product scoped to its store", func(t *testing.T) {
		storeID := uuid.New()
		p, err := NewProduct(storeID, "Widget", "A widget", decimal.NewFromFloat(10), 3, []string{"http://x/a.png"})
		require.NoError(t, err)

		assert.Equal(t, storeID, p.StoreID)
		assert.Equal(t, "Widget", p.Name)
		assert.True(t, p.Price.Equal(decimal.NewFromInt(10)))
		assert.Equal(t, 3, p.Inventory)
		assert.Equal(t, []string{"http://x/a.png"}, p.Images)
		assert.Equal(t, 1, p.Version)
	})

	t.Run("defaults nil images to empty slice", func(t *testing.T) {
		p := createTestProduct(t)
		assert.NotNil(t, p.Images)
		assert.Len(t, p.Images, 0)
	})

	t.Run("trims name", func(t *testing.T) {
		p, err := NewProduct(uuid.New(), "  Widget  ", "", decimal.NewFromInt(1), 0, nil)
		require.NoError(t, err)
		assert.Equal(t, "Widget", p.Name)
	})

	tests := []struct {
		name      string
		prodName  string
		price     decimal.Decimal
		inventory int
		message   string
	}{
		{"empty name", "", decimal.NewFromInt(1), 0, "Product name is required"},
		{"name too long", strings.Repeat("a", 201), decimal.NewFromInt(1), 0, "Product name cannot exceed 200 characters"},
		{"zero price", "Widget", decimal.Zero, 0, "Product price must be positive"},
		{"negative price", "Widget", decimal.NewFromInt(-1), 0, "Product price must be positive"},
		{"negative inventory", "Widget", decimal.NewFromInt(1), -1, "Product inventory cannot be negative"},
	}

	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			_, err := NewProduct(uuid.New(), tt.prodName, "", tt.price, tt.inventory, nil)
			require.Error(t, err)

			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, "INVALID_INPUT", domainErr.Code)
			assert.Equal(t, tt.message, domainErr.Message)
		})
	}
}

func TestProduct_Rename(t *testing.T) {
	p := createTestProduct(t)

	require.NoError(t, p.Rename("Gadget"))
	assert.Equal(t, "Gadget", p.Name)
	assert.Equal(t, 2, p.Version)

	require.Error(t, p.Rename("  "))
	assert.Equal(t, "Gadget", p.Name)
}

func TestProduct_SetPrice(t *testing.T) {
	p := createTestProduct(t)

	require.NoError(t, p.SetPrice(decimal.NewFromFloat(19.99)))
	assert.True(t, p.Price.Equal(decimal.NewFromFloat(19.99)))

	require.Error(t, p.SetPrice(decimal.Zero))
	assert.True(t, p.Price.Equal(decimal.NewFromFloat(19.99)))
}

func TestProduct_SetInventory(t *testing.T) {
	p := createTestProduct(t)

	require.NoError(t, p.SetInventory(0))
	assert.Equal(t, 0, p.Inventory)

	require.Error(t, p.SetInventory(-5))
	assert.Equal(t, 0, p.Inventory)
}

func TestProduct_SetImages(t *testing.T) {
	p := createTestProduct(t)

	p.SetImages([]string{"http://x/b.png", "http://x/a.png"})
	assert.Equal(t, []string{"http://x/b.png", "http://x/a.png"}, p.Images)

	p.SetImages(nil)
	assert.NotNil(t, p.Images)
	assert.Len(t, p.Images, 0)
}

func TestProduct_VersionIncrementsPerMutation(t *testing.T) {
	p := createTestProduct(t)

	p.SetDescription("updated")
	require.NoError(t, p.SetPrice(decimal.NewFromInt(2)))
	require.NoError(t, p.SetInventory(1))
	assert.Equal(t, 4, p.Version)
}
