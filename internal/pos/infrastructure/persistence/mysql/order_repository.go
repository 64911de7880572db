package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wyfcoding/cornerstore/internal/pos/domain"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储实例
func NewOrderRepository(db *gorm.DB) domain.OrderRepository {
	return &orderRepository{db: db}
}

// GetByID 加载订单完整图：收银员、订单行→商品→分类
func (r *orderRepository) GetByID(ctx context.Context, id uint) (*domain.Order, error) {
	var order domain.Order
	err := r.db.WithContext(ctx).
		Preload("Cashier").
		Preload("OrderProducts.Product.Category").
		First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

// List 列出订单，orderDate 非空时按支付日的日历日匹配，忽略时分秒
func (r *orderRepository) List(ctx context.Context, orderDate *time.Time) ([]*domain.Order, error) {
	var orders []*domain.Order

	query := r.db.WithContext(ctx).
		Preload("Cashier").
		Preload("OrderProducts.Product.Category")
	if orderDate != nil {
		query = query.Where("paid_on_date IS NOT NULL AND DATE(paid_on_date) = ?", orderDate.Format("2006-01-02"))
	}

	if err := query.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// Create 在单个事务中写入订单与订单行
func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	// 订单行上挂载的 Product 仅用于算总额，入库前摘除，避免级联写商品表
	for i := range order.OrderProducts {
		order.OrderProducts[i].Product = nil
	}
	order.Cashier = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// Delete 在单个事务中先删订单行再删订单，不依赖数据库级联
func (r *orderRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order domain.Order
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &domain.NotFoundError{Resource: "order", ID: id}
			}
			return fmt.Errorf("failed to load order: %w", err)
		}

		if err := tx.Where("order_id = ?", id).Delete(&domain.OrderProduct{}).Error; err != nil {
			return fmt.Errorf("failed to delete order lines: %w", err)
		}
		if err := tx.Delete(&order).Error; err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}
		return nil
	})
}
