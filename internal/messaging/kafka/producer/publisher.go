package producer

import (
	"context"

	"go-jewel-storefront/internal/outbox"

	"github.com/segmentio/kafka-go"
)

const Topic = "order.events"

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type Publisher struct {
	writer MessageWriter
}

func NewPublisher(w MessageWriter) *Publisher {
	return &Publisher{writer: w}
}

func NewWriter(broker string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    Topic,
		Balancer: &kafka.LeastBytes{},
	}
}

func (p *Publisher) Publish(ctx context.Context, event outbox.Event) error {
	msg := kafka.Message{
		Key:   []byte(event.AggregateID),
		Value: event.Payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "aggregate_type", Value: []byte(event.AggregateType)},
			{Key: "event_id", Value: []byte(event.ID.String())},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}
