package app

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-jewel-storefront/internal/config"
	"go-jewel-storefront/internal/messaging/kafka/consumer"
	"go-jewel-storefront/internal/pkg/logger"
)

// RunConsumer drops cached carts once their order is placed.
func RunConsumer() error {
	log.Println("[CONSUMER] Starting cart consumer...")
	cfg := config.Load()

	if cfg.KafkaBroker == "" {
		return errors.New("consumer needs KAFKA_BROKER")
	}

	// 1. Connect to the browser store the API writes to
	store, rdb, err := connectStore(cfg, logger.New(cfg.Env))
	if err != nil {
		return err
	}
	if rdb == nil {
		return errors.New("consumer needs REDIS_ADDR; an in-memory store is never shared with the API")
	}
	defer rdb.Close()
	log.Println("[CONSUMER] Redis connected")

	// 2. Setup Kafka reader
	if err := waitForKafka(cfg.KafkaBroker, maxRetries); err != nil {
		return err
	}
	reader := consumer.NewReader(cfg.KafkaBroker)
	defer reader.Close()
	log.Println("[CONSUMER] Kafka reader initialized")

	// 3. Start consuming
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeMessages(ctx, reader, store)

	// 4. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[CONSUMER] Shutting down...")
	cancel()
	log.Println("[CONSUMER] Stopped")

	return nil
}
