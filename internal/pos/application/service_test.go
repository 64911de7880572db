package application

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/cornerstore/internal/pos/domain"
)

// fakeProductRepo 内存商品仓储，行为与 MySQL 实现对齐
type fakeProductRepo struct {
	nextID   uint
	products map[uint]*domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uint]*domain.Product)}
}

func (r *fakeProductRepo) Search(_ context.Context, search string) ([]*domain.Product, error) {
	pattern := strings.ToLower(search)
	result := make([]*domain.Product, 0, len(r.products))
	for id := uint(1); id <= r.nextID; id++ {
		p, ok := r.products[id]
		if !ok {
			continue
		}
		if pattern == "" ||
			strings.Contains(strings.ToLower(p.ProductName), pattern) ||
			strings.Contains(strings.ToLower(p.Brand), pattern) ||
			(p.Category != nil && strings.Contains(strings.ToLower(p.Category.CategoryName), pattern)) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id uint) (*domain.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) Create(_ context.Context, product *domain.Product) error {
	r.nextID++
	product.ID = r.nextID
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *domain.Product) error {
	r.products[product.ID] = product
	return nil
}

// fakeOrderRepo 内存订单仓储
type fakeOrderRepo struct {
	nextID   uint
	orders   map[uint]*domain.Order
	cashiers map[uint]*domain.Cashier
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:   make(map[uint]*domain.Order),
		cashiers: make(map[uint]*domain.Cashier),
	}
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id uint) (*domain.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	order.Cashier = r.cashiers[order.CashierID]
	return order, nil
}

func (r *fakeOrderRepo) List(_ context.Context, orderDate *time.Time) ([]*domain.Order, error) {
	result := make([]*domain.Order, 0, len(r.orders))
	for id := uint(1); id <= r.nextID; id++ {
		order, ok := r.orders[id]
		if !ok {
			continue
		}
		if orderDate != nil {
			if order.PaidOnDate == nil {
				continue
			}
			y1, m1, d1 := order.PaidOnDate.Date()
			y2, m2, d2 := orderDate.Date()
			if y1 != y2 || m1 != m2 || d1 != d2 {
				continue
			}
		}
		order.Cashier = r.cashiers[order.CashierID]
		result = append(result, order)
	}
	return result, nil
}

func (r *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	r.nextID++
	order.ID = r.nextID
	for i := range order.OrderProducts {
		order.OrderProducts[i].OrderID = order.ID
	}
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.orders[id]; !ok {
		return &domain.NotFoundError{Resource: "order", ID: id}
	}
	delete(r.orders, id)
	return nil
}

// fakeCashierRepo 内存收银员仓储
type fakeCashierRepo struct {
	nextID   uint
	cashiers map[uint]*domain.Cashier
}

func newFakeCashierRepo() *fakeCashierRepo {
	return &fakeCashierRepo{cashiers: make(map[uint]*domain.Cashier)}
}

func (r *fakeCashierRepo) Create(_ context.Context, cashier *domain.Cashier) error {
	r.nextID++
	cashier.ID = r.nextID
	r.cashiers[cashier.ID] = cashier
	return nil
}

func (r *fakeCashierRepo) GetWithOrders(_ context.Context, id uint) (*domain.Cashier, error) {
	return r.cashiers[id], nil
}

// fakePublisher 记录发布的事件
type fakePublisher struct {
	created []*domain.OrderCreatedEvent
	deleted []*domain.OrderDeletedEvent
}

func (p *fakePublisher) PublishOrderCreated(_ context.Context, event *domain.OrderCreatedEvent) error {
	p.created = append(p.created, event)
	return nil
}

func (p *fakePublisher) PublishOrderDeleted(_ context.Context, event *domain.OrderDeletedEvent) error {
	p.deleted = append(p.deleted, event)
	return nil
}

func seedProducts(t *testing.T, repo *fakeProductRepo) {
	t.Helper()
	electronics := &domain.Category{ID: 1, CategoryName: "Electronics"}
	clothing := &domain.Category{ID: 2, CategoryName: "Clothing"}
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &domain.Product{ProductName: "Laptop", Price: decimal.RequireFromString("999.99"), Brand: "BrandA", CategoryID: 1, Category: electronics}))
	require.NoError(t, repo.Create(ctx, &domain.Product{ProductName: "Smartphone", Price: decimal.RequireFromString("699.99"), Brand: "BrandB", CategoryID: 1, Category: electronics}))
	require.NoError(t, repo.Create(ctx, &domain.Product{ProductName: "T-Shirt", Price: decimal.RequireFromString("19.99"), Brand: "BrandC", CategoryID: 2, Category: clothing}))
}

func TestSearchProducts(t *testing.T) {
	repo := newFakeProductRepo()
	seedProducts(t, repo)
	svc := NewCatalogService(repo, nil)
	ctx := context.Background()

	all, err := svc.SearchProducts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byName, err := svc.SearchProducts(ctx, "laptop")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Laptop", byName[0].ProductName)

	byCategory, err := svc.SearchProducts(ctx, "cloth")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "T-Shirt", byCategory[0].ProductName)

	none, err := svc.SearchProducts(ctx, "nonexistent")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestCreateProduct(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewCatalogService(repo, nil)

	dto, err := svc.CreateProduct(context.Background(), CreateProductCommand{
		ProductName: "Headphones",
		Price:       decimal.RequireFromString("149.99"),
		Brand:       "BrandE",
		CategoryID:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), dto.ID)
	assert.Equal(t, "Headphones", dto.ProductName)
	assert.True(t, dto.Price.Equal(decimal.RequireFromString("149.99")))
}

func TestCreateProductNegativePrice(t *testing.T) {
	svc := NewCatalogService(newFakeProductRepo(), nil)

	_, err := svc.CreateProduct(context.Background(), CreateProductCommand{
		ProductName: "Broken",
		Price:       decimal.RequireFromString("-1.00"),
	})
	assert.ErrorIs(t, err, domain.ErrNegativePrice)
}

func TestUpdateProduct(t *testing.T) {
	repo := newFakeProductRepo()
	seedProducts(t, repo)
	svc := NewCatalogService(repo, nil)
	ctx := context.Background()

	err := svc.UpdateProduct(ctx, 1, CreateProductCommand{
		ProductName: "Gaming Laptop",
		Price:       decimal.RequireFromString("1299.99"),
		Brand:       "BrandA",
		CategoryID:  1,
	})
	require.NoError(t, err)

	updated, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Gaming Laptop", updated.ProductName)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("1299.99")))
}

func TestUpdateProductNotFound(t *testing.T) {
	svc := NewCatalogService(newFakeProductRepo(), nil)

	err := svc.UpdateProduct(context.Background(), 999, CreateProductCommand{
		ProductName: "Ghost",
		Price:       decimal.RequireFromString("1.00"),
	})
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, uint(999), notFound.ID)
}

func TestCreateCashier(t *testing.T) {
	svc := NewCashierService(newFakeCashierRepo())

	dto, err := svc.CreateCashier(context.Background(), CreateCashierCommand{FirstName: "Alice", LastName: "Brown"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), dto.ID)
	assert.Equal(t, "Alice Brown", dto.FullName)
	assert.NotNil(t, dto.Orders)
}

func TestGetCashierNotFound(t *testing.T) {
	svc := NewCashierService(newFakeCashierRepo())

	dto, err := svc.GetCashier(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, dto)
}

func TestCreateOrder(t *testing.T) {
	productRepo := newFakeProductRepo()
	seedProducts(t, productRepo)
	orderRepo := newFakeOrderRepo()
	orderRepo.cashiers[1] = &domain.Cashier{ID: 1, FirstName: "John", LastName: "Doe"}
	publisher := &fakePublisher{}
	svc := NewOrderService(orderRepo, productRepo, publisher, nil)

	paidOn := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	dto, err := svc.CreateOrder(context.Background(), CreateOrderCommand{
		CashierID:  1,
		PaidOnDate: &paidOn,
		Lines: []OrderLineCommand{
			{ProductID: 1, Quantity: 1},
			{ProductID: 3, Quantity: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), dto.ID)
	assert.Equal(t, "John Doe", dto.CashierFullName)
	assert.Len(t, dto.OrderProducts, 2)
	// 999.99 + 2*19.99
	assert.True(t, dto.Total.Equal(decimal.RequireFromString("1039.97")))

	require.Len(t, publisher.created, 1)
	assert.Equal(t, dto.ID, publisher.created[0].OrderID)
	assert.Equal(t, 2, publisher.created[0].Lines)
}

func TestCreateOrderEmpty(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo(), newFakeProductRepo(), nil, nil)

	_, err := svc.CreateOrder(context.Background(), CreateOrderCommand{CashierID: 1})
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	productRepo := newFakeProductRepo()
	seedProducts(t, productRepo)
	svc := NewOrderService(newFakeOrderRepo(), productRepo, nil, nil)

	_, err := svc.CreateOrder(context.Background(), CreateOrderCommand{
		CashierID: 1,
		Lines:     []OrderLineCommand{{ProductID: 99, Quantity: 1}},
	})
	var notFound *domain.ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, uint(99), notFound.ID)
}

func TestListOrdersByDate(t *testing.T) {
	productRepo := newFakeProductRepo()
	seedProducts(t, productRepo)
	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(orderRepo, productRepo, nil, nil)
	ctx := context.Background()

	march := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	april := time.Date(2024, 4, 1, 18, 45, 0, 0, time.UTC)
	for _, paidOn := range []time.Time{march, april} {
		d := paidOn
		_, err := svc.CreateOrder(ctx, CreateOrderCommand{
			CashierID:  1,
			PaidOnDate: &d,
			Lines:      []OrderLineCommand{{ProductID: 1, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	// 过滤只看日历日，忽略时分秒
	filter := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	filtered, err := svc.ListOrders(ctx, &filter)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, march, *filtered[0].PaidOnDate)

	all, err := svc.ListOrders(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeleteOrder(t *testing.T) {
	productRepo := newFakeProductRepo()
	seedProducts(t, productRepo)
	orderRepo := newFakeOrderRepo()
	publisher := &fakePublisher{}
	svc := NewOrderService(orderRepo, productRepo, publisher, nil)
	ctx := context.Background()

	dto, err := svc.CreateOrder(ctx, CreateOrderCommand{
		CashierID: 1,
		Lines:     []OrderLineCommand{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(ctx, dto.ID))
	require.Len(t, publisher.deleted, 1)

	gone, err := svc.GetOrder(ctx, dto.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestDeleteOrderNotFound(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo(), newFakeProductRepo(), nil, nil)

	err := svc.DeleteOrder(context.Background(), 42)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}
