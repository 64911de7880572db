package mysql

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/cornerstore/internal/pos/domain"
	"github.com/wyfcoding/cornerstore/pkg/logger"
	"gorm.io/gorm"
)

// Migrate 按外键依赖顺序建表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Category{},
		&domain.Product{},
		&domain.Cashier{},
		&domain.Order{},
		&domain.OrderProduct{},
	)
}

// Seed 写入初始数据，幂等：已存在的行不会重复写入
func Seed(ctx context.Context, db *gorm.DB) error {
	now := time.Now()

	categories := []domain.Category{
		{ID: 1, CategoryName: "Electronics"},
		{ID: 2, CategoryName: "Clothing"},
	}
	products := []domain.Product{
		{ID: 1, ProductName: "Laptop", Price: decimal.NewFromFloat(999.99), Brand: "BrandA", CategoryID: 1},
		{ID: 2, ProductName: "Smartphone", Price: decimal.NewFromFloat(699.99), Brand: "BrandB", CategoryID: 1},
		{ID: 3, ProductName: "T-Shirt", Price: decimal.NewFromFloat(19.99), Brand: "BrandC", CategoryID: 2},
		{ID: 4, ProductName: "Jeans", Price: decimal.NewFromFloat(49.99), Brand: "BrandD", CategoryID: 2},
	}
	cashiers := []domain.Cashier{
		{ID: 1, FirstName: "John", LastName: "Doe"},
		{ID: 2, FirstName: "Jane", LastName: "Smith"},
	}
	orders := []domain.Order{
		{ID: 1, CashierID: 1, PaidOnDate: &now},
		{ID: 2, CashierID: 2, PaidOnDate: &now},
	}
	orderProducts := []domain.OrderProduct{
		{OrderID: 1, ProductID: 1, Quantity: 1},
		{OrderID: 1, ProductID: 2, Quantity: 2},
		{OrderID: 2, ProductID: 3, Quantity: 3},
		{OrderID: 2, ProductID: 4, Quantity: 1},
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range categories {
			if err := tx.FirstOrCreate(&categories[i], domain.Category{ID: categories[i].ID}).Error; err != nil {
				return err
			}
		}
		for i := range products {
			if err := tx.FirstOrCreate(&products[i], domain.Product{ID: products[i].ID}).Error; err != nil {
				return err
			}
		}
		for i := range cashiers {
			if err := tx.FirstOrCreate(&cashiers[i], domain.Cashier{ID: cashiers[i].ID}).Error; err != nil {
				return err
			}
		}
		for i := range orders {
			if err := tx.FirstOrCreate(&orders[i], domain.Order{ID: orders[i].ID}).Error; err != nil {
				return err
			}
		}
		for i := range orderProducts {
			cond := domain.OrderProduct{OrderID: orderProducts[i].OrderID, ProductID: orderProducts[i].ProductID}
			if err := tx.FirstOrCreate(&orderProducts[i], cond).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	logger.Info(ctx, "Database seeded successfully")
	return nil
}
