package messaging

import (
	"moving-service/src/internal/model"
	kafka "moving-service/src/pkg/kafka/confluent"
	"moving-service/src/pkg/log"
)

// OrderEventPublisher is what the booking usecase needs from messaging.
type OrderEventPublisher interface {
	SendOrderCreated(event *model.OrderCreatedEvent) error
}

type OrderProducer struct {
	OrderCreatedProducer Producer[*model.OrderCreatedEvent]
}

func NewOrderProducer(producer kafka.Producer, log log.Log) *OrderProducer {
	return &OrderProducer{
		OrderCreatedProducer: Producer[*model.OrderCreatedEvent]{
			Producer: producer,
			Topic:    "order-created",
			Log:      log,
		},
	}
}

func (p *OrderProducer) SendOrderCreated(event *model.OrderCreatedEvent) error {
	return p.OrderCreatedProducer.Send(event)
}
