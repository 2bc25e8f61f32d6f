package ordering

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain/shared"
)

func testItem(price float64, quantity int) Item {
	return Item{
		ProductID: uuid.New(),
		Name:      "Widget",
		Price:     decimal.NewFromFloat(price),
		Quantity:  quantity,
	}
}

func TestStatus_IsValid(t *testing.T) {
	tests := []struct {
		status  Status
		isValid bool
	}{
		{StatusPending, true},
		{StatusProcessing, true},
		{StatusShipped, true},
		{StatusDelivered, true},
		{StatusCancelled, true},
		{Status("unknown"), false},
		{Status(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.status.IsValid())
		})
	}
}

func TestItem_Subtotal(t *testing.T) {
	item := testItem(10.00, 2)
	assert.Equal(t, "20", item.Subtotal().String())

	item = testItem(9.99, 3)
	assert.Equal(t, "29.97", item.Subtotal().String())
}

func TestNewOrder(t *testing.T) {
	t.Run("creates pending order with total from item snapshots", func(t *testing.T) {
		storeID := uuid.New()
		order, err := NewOrder(storeID, []Item{testItem(10.00, 2), testItem(5.50, 1)}, CustomerInfo{Name: "Alice"})
		require.NoError(t, err)

		assert.Equal(t, storeID, order.StoreID)
		assert.Equal(t, StatusPending, order.Status)
		assert.Equal(t, "25.5", order.Total.String())
		assert.Equal(t, "", order.OrderNumber)
		assert.Len(t, order.Items, 2)
	})

	t.Run("trims customer name", func(t *testing.T) {
		order, err := NewOrder(uuid.New(), []Item{testItem(1, 1)}, CustomerInfo{Name: "  Bob  "})
		require.NoError(t, err)
		assert.Equal(t, "Bob", order.CustomerInfo.Name)
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		_, err := NewOrder(uuid.New(), nil, CustomerInfo{Name: "Alice"})
		assertInvalidInput(t, err, "Order must contain at least one item")
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewOrder(uuid.New(), []Item{testItem(10, 0)}, CustomerInfo{Name: "Alice"})
		assertInvalidInput(t, err, "Order item quantity must be positive")
	})

	t.Run("rejects non-positive total", func(t *testing.T) {
		_, err := NewOrder(uuid.New(), []Item{testItem(0, 1)}, CustomerInfo{Name: "Alice"})
		assertInvalidInput(t, err, "Order total must be positive")
	})

	t.Run("rejects missing customer name", func(t *testing.T) {
		_, err := NewOrder(uuid.New(), []Item{testItem(10, 1)}, CustomerInfo{Name: "   "})
		assertInvalidInput(t, err, "Customer name is required")
	})
}

func TestOrder_UpdateStatus(t *testing.T) {
	order, err := NewOrder(uuid.New(), []Item{testItem(10, 1)}, CustomerInfo{Name: "Alice"})
	require.NoError(t, err)

	require.NoError(t, order.UpdateStatus(StatusShipped))
	assert.Equal(t, StatusShipped, order.Status)
	assert.Equal(t, 2, order.Version)

	err = order.UpdateStatus(Status("teleported"))
	require.Error(t, err)
	assert.Equal(t, StatusShipped, order.Status)
}

func assertInvalidInput(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	assert.Equal(t, message, domainErr.Message)
}
