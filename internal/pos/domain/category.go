// Package domain 包含门店收银系统的领域模型
package domain

// Category 商品分类实体
type Category struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CategoryName string    `gorm:"column:category_name;type:varchar(200);not null" json:"categoryName"`
	Products     []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

func (Category) TableName() string { return "categories" }
