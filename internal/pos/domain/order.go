package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Order 订单实体
// paid_on_date 为空表示尚未支付，系统内没有显式的订单状态字段
type Order struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	CashierID     uint           `gorm:"column:cashier_id;index;not null" json:"cashierId"`
	Cashier       *Cashier       `gorm:"foreignKey:CashierID" json:"cashier,omitempty"`
	PaidOnDate    *time.Time     `gorm:"column:paid_on_date" json:"paidOnDate"`
	OrderProducts []OrderProduct `gorm:"foreignKey:OrderID" json:"orderProducts"`
}

func (Order) TableName() string { return "orders" }

// Total 计算订单总额，读时计算，不落库
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range o.OrderProducts {
		line := &o.OrderProducts[i]
		if line.Product != nil {
			total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
	}
	return total
}

// OrderProduct 订单行实体，(order_id, product_id) 组成复合主键
type OrderProduct struct {
	OrderID   uint     `gorm:"column:order_id;primaryKey;autoIncrement:false" json:"orderId"`
	ProductID uint     `gorm:"column:product_id;primaryKey;autoIncrement:false" json:"productId"`
	Quantity  int      `gorm:"column:quantity;not null" json:"quantity"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (OrderProduct) TableName() string { return "order_products" }

// OrderRepository 订单仓储接口
type OrderRepository interface {
	// 按主键获取订单及其完整图（收银员、订单行→商品→分类），未命中返回 (nil, nil)
	GetByID(ctx context.Context, id uint) (*Order, error)
	// 列出订单，orderDate 非空时按 paid_on_date 的日历日过滤（忽略时分秒）
	List(ctx context.Context, orderDate *time.Time) ([]*Order, error)
	// 在单个事务中持久化订单及其订单行
	Create(ctx context.Context, order *Order) error
	// 在单个事务中删除订单行与订单本身，未命中返回 NotFoundError
	Delete(ctx context.Context, id uint) error
}
