// Package events announces order outcomes to downstream consumers.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

const (
	OrderCompleted = "order.completed"
	OrderFailed    = "order.failed"
)

type OrderEvent struct {
	Type          string    `json:"type"`
	OrderID       string    `json:"orderId"`
	UserID        string    `json:"userId"`
	Amount        int64     `json:"amount"`
	CouponCode    *string   `json:"couponCode"`
	TransactionID string    `json:"transactionId,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

type Publisher interface {
	PublishOrder(ctx context.Context, ev OrderEvent) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(topic string, brokers ...string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		WriteTimeout:           5 * time.Second,
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: w}
}

// PublishOrder keys messages by order id so one order's events stay ordered.
func (p *KafkaPublisher) PublishOrder(ctx context.Context, ev OrderEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", ev.Type, err)
	}
	msg := kafka.Message{
		Key:   []byte(ev.OrderID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(ev.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s for order %s: %w", ev.Type, ev.OrderID, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error { return p.writer.Close() }

// Noop is used when no brokers are configured.
type Noop struct{}

func (Noop) PublishOrder(ctx context.Context, ev OrderEvent) error {
	log.WithFields(log.Fields{"type": ev.Type, "order_id": ev.OrderID}).Debug("[events] publishing disabled")
	return nil
}

func (Noop) Close() error { return nil }
