package producer

import (
	"context"
	"encoding/json"
	"time"

	"laundry-service/internal/service"

	"github.com/segmentio/kafka-go"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderItemCorrected = "order.item_corrected"
	EventOrderDelivered     = "order.delivered"
)

// OrderProducer публикует события заказа в один топик; ключ сообщения - код заказа.
type OrderProducer struct {
	writer *kafka.Writer
}

func NewOrderProducer(brokers []string, topic string) *OrderProducer {
	return &OrderProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

var _ service.EventBus = (*OrderProducer)(nil)

// Envelope - общая обёртка: тип события и полезная нагрузка.
type Envelope struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

func (p *OrderProducer) PublishOrderCreated(ctx context.Context, e service.OrderCreatedEvent) error {
	return p.send(ctx, e.Code, EventOrderCreated, e)
}

func (p *OrderProducer) PublishItemCorrected(ctx context.Context, e service.ItemCorrectedEvent) error {
	return p.send(ctx, e.Code, EventOrderItemCorrected, e)
}

func (p *OrderProducer) PublishOrderDelivered(ctx context.Context, e service.OrderDeliveredEvent) error {
	return p.send(ctx, e.Code, EventOrderDelivered, e)
}

func (p *OrderProducer) send(ctx context.Context, key, typ string, payload any) error {
	msg, err := EncodeMessage(key, typ, payload, time.Now().UTC())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return p.writer.WriteMessages(ctx, msg)
}

// EncodeMessage собирает kafka-сообщение с заголовком event-type.
func EncodeMessage(key, typ string, payload any, at time.Time) (kafka.Message, error) {
	value, err := json.Marshal(Envelope{Type: typ, OccurredAt: at, Payload: payload})
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:     []byte(key),
		Value:   value,
		Headers: []kafka.Header{{Key: "event-type", Value: []byte(typ)}},
	}, nil
}

func (p *OrderProducer) Close() error {
	return p.writer.Close()
}
