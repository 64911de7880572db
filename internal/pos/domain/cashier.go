package domain

import "context"

// Cashier 收银员实体
type Cashier struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	FirstName string  `gorm:"column:first_name;type:varchar(100);not null" json:"firstName"`
	LastName  string  `gorm:"column:last_name;type:varchar(100);not null" json:"lastName"`
	Orders    []Order `gorm:"foreignKey:CashierID" json:"orders,omitempty"`
}

func (Cashier) TableName() string { return "cashiers" }

// FullName 拼接姓名，不落库
func (c *Cashier) FullName() string {
	return c.FirstName + " " + c.LastName
}

// CashierRepository 收银员仓储接口
type CashierRepository interface {
	// 新建收银员
	Create(ctx context.Context, cashier *Cashier) error
	// 按主键获取收银员及其订单图（订单→订单行→商品→分类），未命中返回 (nil, nil)
	GetWithOrders(ctx context.Context, id uint) (*Cashier, error)
}
