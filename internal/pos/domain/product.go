package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Product 商品实体
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	ProductName string          `gorm:"column:product_name;type:varchar(200);not null" json:"productName"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	Brand       string          `gorm:"column:brand;type:varchar(100);not null" json:"brand"`
	CategoryID  uint            `gorm:"column:category_id;index;not null" json:"categoryId"`
	Category    *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Product) TableName() string { return "products" }

// ProductRepository 商品仓储接口
type ProductRepository interface {
	// 模糊检索商品，search 为空时返回全部；始终加载分类
	Search(ctx context.Context, search string) ([]*Product, error)
	// 按主键获取商品，未命中返回 (nil, nil)
	GetByID(ctx context.Context, id uint) (*Product, error)
	// 新建商品
	Create(ctx context.Context, product *Product) error
	// 全字段覆盖更新
	Update(ctx context.Context, product *Product) error
}
