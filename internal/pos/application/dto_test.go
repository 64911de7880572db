package application

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/wyfcoding/cornerstore/internal/pos/domain"
)

func TestNewProductDTO(t *testing.T) {
	product := &domain.Product{
		ID:          1,
		ProductName: "Laptop",
		Price:       decimal.RequireFromString("999.99"),
		Brand:       "BrandA",
		CategoryID:  2,
		Category:    &domain.Category{ID: 2, CategoryName: "Electronics"},
	}

	dto := NewProductDTO(product)
	assert.Equal(t, uint(2), dto.Category.ID)
	assert.Equal(t, "Electronics", dto.Category.CategoryName)
}

func TestNewProductDTOWithoutCategory(t *testing.T) {
	// 分类未预加载时仍保留外键 ID
	product := &domain.Product{ID: 1, ProductName: "Laptop", CategoryID: 2}

	dto := NewProductDTO(product)
	assert.Equal(t, uint(2), dto.Category.ID)
	assert.Empty(t, dto.Category.CategoryName)
}

func TestNewOrderDTO(t *testing.T) {
	paidOn := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	order := &domain.Order{
		ID:         3,
		CashierID:  1,
		Cashier:    &domain.Cashier{ID: 1, FirstName: "Jane", LastName: "Smith"},
		PaidOnDate: &paidOn,
		OrderProducts: []domain.OrderProduct{
			{OrderID: 3, ProductID: 1, Quantity: 2, Product: &domain.Product{ID: 1, Price: decimal.RequireFromString("19.99")}},
		},
	}

	dto := NewOrderDTO(order)
	assert.Equal(t, "Jane Smith", dto.CashierFullName)
	assert.True(t, dto.Total.Equal(decimal.RequireFromString("39.98")))
	assert.Len(t, dto.OrderProducts, 1)
	assert.NotNil(t, dto.OrderProducts[0].Product)
}

func TestNewOrderDTOEmptyLines(t *testing.T) {
	dto := NewOrderDTO(&domain.Order{ID: 1, CashierID: 1})
	assert.NotNil(t, dto.OrderProducts)
	assert.Empty(t, dto.OrderProducts)
	assert.True(t, dto.Total.IsZero())
}

func TestNewCashierDTO(t *testing.T) {
	cashier := &domain.Cashier{
		ID:        1,
		FirstName: "John",
		LastName:  "Doe",
		Orders: []domain.Order{
			{ID: 1, CashierID: 1},
			{ID: 2, CashierID: 1},
		},
	}

	dto := NewCashierDTO(cashier)
	assert.Equal(t, "John Doe", dto.FullName)
	assert.Len(t, dto.Orders, 2)
	// 订单图里不内嵌收银员，fullName 取自外层
	assert.Equal(t, "John Doe", dto.Orders[0].CashierFullName)
}
