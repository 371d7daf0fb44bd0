package producer

import (
	"context"
	"log"
	"time"

	"go-jewel-storefront/internal/outbox"
)

const (
	PollInterval = 5 * time.Second
	BatchSize    = 10
)

func ProcessOutboxEvents(ctx context.Context, svc outbox.Service, pub outbox.Publisher, every time.Duration) {
	if every <= 0 {
		every = PollInterval
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	log.Printf("[WORKER] Outbox processor started (polling every %s)", every)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sent, err := svc.Dispatch(ctx, pub, BatchSize)
			if err != nil {
				log.Printf("[WORKER] Error processing events: %v", err)
				continue
			}
			if sent > 0 {
				log.Printf("[WORKER] Published %d events", sent)
			}
		}
	}
}
