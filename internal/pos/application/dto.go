// Package application 实现门店收银系统的应用服务与响应映射
package application

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/cornerstore/internal/pos/domain"
)

// CategoryDTO 分类响应
type CategoryDTO struct {
	ID           uint   `json:"id"`
	CategoryName string `json:"categoryName"`
}

// ProductDTO 商品响应
type ProductDTO struct {
	ID          uint            `json:"id"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Brand       string          `json:"brand"`
	Category    CategoryDTO     `json:"category"`
}

// OrderProductDTO 订单行响应
type OrderProductDTO struct {
	ProductID uint        `json:"productId"`
	Quantity  int         `json:"quantity"`
	Product   *ProductDTO `json:"product,omitempty"`
}

// OrderDTO 订单响应，total 与 cashierFullName 均为读时计算
type OrderDTO struct {
	ID              uint              `json:"id"`
	CashierID       uint              `json:"cashierId"`
	CashierFullName string            `json:"cashierFullName"`
	Total           decimal.Decimal   `json:"total"`
	PaidOnDate      *time.Time        `json:"paidOnDate"`
	OrderProducts   []OrderProductDTO `json:"orderProducts"`
}

// CashierDTO 收银员响应
type CashierDTO struct {
	ID        uint       `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	FullName  string     `json:"fullName"`
	Orders    []OrderDTO `json:"orders"`
}

// NewProductDTO 由商品实体构造响应
func NewProductDTO(p *domain.Product) ProductDTO {
	dto := ProductDTO{
		ID:          p.ID,
		ProductName: p.ProductName,
		Price:       p.Price,
		Brand:       p.Brand,
		Category:    CategoryDTO{ID: p.CategoryID},
	}
	if p.Category != nil {
		dto.Category.CategoryName = p.Category.CategoryName
	}
	return dto
}

// NewOrderDTO 由订单实体构造响应
func NewOrderDTO(o *domain.Order) OrderDTO {
	dto := OrderDTO{
		ID:            o.ID,
		CashierID:     o.CashierID,
		Total:         o.Total(),
		PaidOnDate:    o.PaidOnDate,
		OrderProducts: make([]OrderProductDTO, 0, len(o.OrderProducts)),
	}
	if o.Cashier != nil {
		dto.CashierFullName = o.Cashier.FullName()
	}
	for i := range o.OrderProducts {
		line := &o.OrderProducts[i]
		lineDTO := OrderProductDTO{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		}
		if line.Product != nil {
			p := NewProductDTO(line.Product)
			lineDTO.Product = &p
		}
		dto.OrderProducts = append(dto.OrderProducts, lineDTO)
	}
	return dto
}

// NewCashierDTO 由收银员实体构造响应
func NewCashierDTO(c *domain.Cashier) CashierDTO {
	dto := CashierDTO{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.FullName(),
		Orders:    make([]OrderDTO, 0, len(c.Orders)),
	}
	for i := range c.Orders {
		order := c.Orders[i]
		// 收银员图里不再内嵌收银员自身，fullName 直接取自外层
		orderDTO := NewOrderDTO(&order)
		orderDTO.CashierFullName = dto.FullName
		dto.Orders = append(dto.Orders, orderDTO)
	}
	return dto
}
