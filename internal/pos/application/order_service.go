package application

import (
	"context"
	"fmt"
	"time"

	"github.com/wyfcoding/cornerstore/internal/pos/domain"
	"github.com/wyfcoding/cornerstore/pkg/logger"
	"github.com/wyfcoding/cornerstore/pkg/metrics"
)

// OrderLineCommand 订单行命令
type OrderLineCommand struct {
	ProductID uint
	Quantity  int
}

// CreateOrderCommand 新建订单命令
type CreateOrderCommand struct {
	CashierID  uint
	PaidOnDate *time.Time
	Lines      []OrderLineCommand
}

// OrderService 订单应用服务
type OrderService struct {
	orders    domain.OrderRepository
	products  domain.ProductRepository
	publisher domain.EventPublisher
	metrics   *metrics.Metrics
}

// NewOrderService 创建订单应用服务
func NewOrderService(orders domain.OrderRepository, products domain.ProductRepository, publisher domain.EventPublisher, m *metrics.Metrics) *OrderService {
	return &OrderService{orders: orders, products: products, publisher: publisher, metrics: m}
}

// GetOrder 获取订单完整图，未命中返回 (nil, nil)
func (s *OrderService) GetOrder(ctx context.Context, id uint) (*OrderDTO, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}

	dto := NewOrderDTO(order)
	return &dto, nil
}

// ListOrders 列出订单，orderDate 非空时按日历日过滤
func (s *OrderService) ListOrders(ctx context.Context, orderDate *time.Time) ([]OrderDTO, error) {
	orders, err := s.orders.List(ctx, orderDate)
	if err != nil {
		return nil, err
	}

	dtos := make([]OrderDTO, 0, len(orders))
	for _, order := range orders {
		dtos = append(dtos, NewOrderDTO(order))
	}
	return dtos, nil
}

// CreateOrder 新建订单
// 订单行不能为空，且每一行引用的商品必须已存在
func (s *OrderService) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*OrderDTO, error) {
	if len(cmd.Lines) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	order := &domain.Order{
		CashierID:     cmd.CashierID,
		PaidOnDate:    cmd.PaidOnDate,
		OrderProducts: make([]domain.OrderProduct, 0, len(cmd.Lines)),
	}
	for _, line := range cmd.Lines {
		product, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, &domain.ProductNotFoundError{ID: line.ProductID}
		}
		order.OrderProducts = append(order.OrderProducts, domain.OrderProduct{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Product:   product,
		})
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	created, err := s.orders.GetByID(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("order %d vanished after create", order.ID)
	}

	if s.metrics != nil {
		s.metrics.OrdersCreatedTotal.Inc()
	}
	if s.publisher != nil {
		event := &domain.OrderCreatedEvent{
			OrderID:   created.ID,
			CashierID: created.CashierID,
			Total:     created.Total(),
			Lines:     len(created.OrderProducts),
			CreatedAt: time.Now(),
		}
		// 事件发布失败不影响请求结果
		if err := s.publisher.PublishOrderCreated(ctx, event); err != nil {
			logger.Warn(ctx, "Failed to publish order created event", "order_id", created.ID, "error", err)
		}
	}

	dto := NewOrderDTO(created)
	return &dto, nil
}

// DeleteOrder 删除订单及其订单行，不存在时返回 NotFoundError
func (s *OrderService) DeleteOrder(ctx context.Context, id uint) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}

	if s.metrics != nil {
		s.metrics.OrdersDeletedTotal.Inc()
	}
	if s.publisher != nil {
		event := &domain.OrderDeletedEvent{OrderID: id, DeletedAt: time.Now()}
		if err := s.publisher.PublishOrderDeleted(ctx, event); err != nil {
			logger.Warn(ctx, "Failed to publish order deleted event", "order_id", id, "error", err)
		}
	}
	return nil
}
