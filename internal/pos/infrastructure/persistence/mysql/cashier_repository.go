package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/wyfcoding/cornerstore/internal/pos/domain"
	"gorm.io/gorm"
)

type cashierRepository struct {
	db *gorm.DB
}

// NewCashierRepository 创建收银员仓储实例
func NewCashierRepository(db *gorm.DB) domain.CashierRepository {
	return &cashierRepository{db: db}
}

func (r *cashierRepository) Create(ctx context.Context, cashier *domain.Cashier) error {
	if err := r.db.WithContext(ctx).Create(cashier).Error; err != nil {
		return fmt.Errorf("failed to create cashier: %w", err)
	}
	return nil
}

// GetWithOrders 加载收银员及其订单完整图：订单→订单行→商品→分类
func (r *cashierRepository) GetWithOrders(ctx context.Context, id uint) (*domain.Cashier, error) {
	var cashier domain.Cashier
	err := r.db.WithContext(ctx).
		Preload("Orders").
		Preload("Orders.OrderProducts.Product.Category").
		First(&cashier, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cashier: %w", err)
	}
	return &cashier, nil
}
