package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OrderCreatedEvent 订单创建事件
type OrderCreatedEvent struct {
	OrderID   uint            `json:"order_id"`
	CashierID uint            `json:"cashier_id"`
	Total     decimal.Decimal `json:"total"`
	Lines     int             `json:"lines"`
	CreatedAt time.Time       `json:"created_at"`
}

// OrderDeletedEvent 订单删除事件
type OrderDeletedEvent struct {
	OrderID   uint      `json:"order_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

// EventPublisher 领域事件发布接口
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, event *OrderCreatedEvent) error
	PublishOrderDeleted(ctx context.Context, event *OrderDeletedEvent) error
}
