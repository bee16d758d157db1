// Package events publishes order lifecycle events to Kafka. Publication
// is best effort: a broker failure is logged, never surfaced to the
// shopper.
package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

const ordersTopic = "storefront-orders"

type OrderCreatedEvent struct {
	OrderID   string    `json:"order_id"`
	CartID    string    `json:"cart_id"`
	CreatedAt time.Time `json:"created_at"`
}

// messageWriter is the slice of kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type Publisher struct {
	writer messageWriter
	closer func() error
}

func NewPublisher(brokers ...string) *Publisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        ordersTopic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
	return &Publisher{writer: w, closer: w.Close}
}

func (p *Publisher) OrderCreated(ctx context.Context, orderID, cartID string) {
	event := OrderCreatedEvent{
		OrderID:   orderID,
		CartID:    cartID,
		CreatedAt: time.Now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal order event: %v", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(orderID),
		Value: payload,
	}
	if e2 := p.writer.WriteMessages(ctx, msg); e2 != nil {
		log.Printf("failed to publish order event: %v", e2)
	}
}

func (p *Publisher) Close() {
	if p.closer == nil {
		return
	}
	if err := p.closer(); err != nil {
		log.Printf("error closing kafka writer: %v", err)
	}
}
