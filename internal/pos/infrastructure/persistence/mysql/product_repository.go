// Package mysql 提供领域仓储接口的 MySQL GORM 实现
package mysql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wyfcoding/cornerstore/internal/pos/domain"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储实例
func NewProductRepository(db *gorm.DB) domain.ProductRepository {
	return &productRepository{db: db}
}

// Search 模糊检索商品，匹配商品名、品牌与分类名，大小写不敏感
func (r *productRepository) Search(ctx context.Context, search string) ([]*domain.Product, error) {
	var products []*domain.Product

	query := r.db.WithContext(ctx).Model(&domain.Product{}).Preload("Category")
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.
			Joins("LEFT JOIN categories ON categories.id = products.category_id").
			Where("LOWER(products.product_name) LIKE ? OR LOWER(products.brand) LIKE ? OR LOWER(categories.category_name) LIKE ?",
				pattern, pattern, pattern)
	}

	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).Preload("Category").First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update 只覆盖四个业务字段，不触碰关联
func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	err := r.db.WithContext(ctx).
		Model(&domain.Product{ID: product.ID}).
		Select("product_name", "price", "brand", "category_id").
		Updates(map[string]interface{}{
			"product_name": product.ProductName,
			"price":        product.Price,
			"brand":        product.Brand,
			"category_id":  product.CategoryID,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}
