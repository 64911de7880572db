package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderTotal(t *testing.T) {
	order := &Order{
		OrderProducts: []OrderProduct{
			{ProductID: 1, Quantity: 2, Product: &Product{ID: 1, Price: decimal.RequireFromString("10.00")}},
			{ProductID: 2, Quantity: 1, Product: &Product{ID: 2, Price: decimal.RequireFromString("5.50")}},
		},
	}

	assert.True(t, order.Total().Equal(decimal.RequireFromString("25.50")))
}

func TestOrderTotalEmpty(t *testing.T) {
	order := &Order{}
	assert.True(t, order.Total().IsZero())
}

func TestOrderTotalSkipsUnloadedProducts(t *testing.T) {
	// 订单行未预加载商品时不参与合计
	order := &Order{
		OrderProducts: []OrderProduct{
			{ProductID: 1, Quantity: 3},
			{ProductID: 2, Quantity: 2, Product: &Product{ID: 2, Price: decimal.RequireFromString("19.99")}},
		},
	}

	assert.True(t, order.Total().Equal(decimal.RequireFromString("39.98")))
}

func TestCashierFullName(t *testing.T) {
	cashier := &Cashier{FirstName: "John", LastName: "Doe"}
	assert.Equal(t, "John Doe", cashier.FullName())
}

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{Resource: "order", ID: 42}
	require.EqualError(t, err, "order with ID 42 not found")
}

func TestProductNotFoundErrorMessage(t *testing.T) {
	err := &ProductNotFoundError{ID: 7}
	require.EqualError(t, err, "product with ID 7 not found")
}
