package consumer

import (
	"context"
	"log"

	"go-jewel-storefront/internal/session"

	"github.com/segmentio/kafka-go"
)

const (
	Topic   = "order.events"
	GroupID = "storefront-cart-purge"
)

// MessageReader is the part of *kafka.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

func NewReader(broker string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{broker},
		Topic:   Topic,
		GroupID: GroupID,
	})
}

func ConsumeMessages(ctx context.Context, reader MessageReader, store session.Store) {
	log.Println("[CONSUMER] Started consuming messages")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[CONSUMER] Error fetching message: %v", err)
			continue
		}

		eventType := getHeader(msg.Headers, "event_type")

		if eventType == "ORDER_PLACED" {
			if err := handleOrderPlaced(ctx, msg.Value, store); err != nil {
				log.Printf("[CONSUMER] Error handling ORDER_PLACED: %v", err)
				continue
			}
		}

		// unknown event types are committed and skipped
		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Printf("[CONSUMER] Error committing message: %v", err)
		}
	}
}
