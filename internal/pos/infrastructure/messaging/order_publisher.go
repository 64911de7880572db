// Package messaging 提供订单领域事件的 Kafka 发布实现
package messaging

import (
	"context"
	"fmt"

	"github.com/wyfcoding/cornerstore/internal/pos/domain"
	"github.com/wyfcoding/cornerstore/pkg/mq"
)

type orderEventPublisher struct {
	producer *mq.KafkaProducer
	topic    string
}

// NewOrderEventPublisher 创建订单事件发布器
func NewOrderEventPublisher(producer *mq.KafkaProducer, topic string) domain.EventPublisher {
	return &orderEventPublisher{producer: producer, topic: topic}
}

func (p *orderEventPublisher) PublishOrderCreated(ctx context.Context, event *domain.OrderCreatedEvent) error {
	key := fmt.Sprintf("order-%d", event.OrderID)
	return p.producer.SendMessage(ctx, p.topic, key, map[string]interface{}{
		"type":    "order.created",
		"payload": event,
	})
}

func (p *orderEventPublisher) PublishOrderDeleted(ctx context.Context, event *domain.OrderDeletedEvent) error {
	key := fmt.Sprintf("order-%d", event.OrderID)
	return p.producer.SendMessage(ctx, p.topic, key, map[string]interface{}{
		"type":    "order.deleted",
		"payload": event,
	})
}
