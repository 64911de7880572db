package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyOrder 订单缺少订单行
var ErrEmptyOrder = errors.New("order must include at least one product")

// ErrNegativePrice 商品价格为负
var ErrNegativePrice = errors.New("price must be non-negative")

// NotFoundError 实体未命中
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Resource, e.ID)
}

// ProductNotFoundError 订单行引用了不存在的商品
type ProductNotFoundError struct {
	ID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with ID %d not found", e.ID)
}
