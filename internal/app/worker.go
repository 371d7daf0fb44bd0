package app

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jewel-storefront/internal/config"
	"go-jewel-storefront/internal/messaging/kafka/producer"
	"go-jewel-storefront/internal/outbox"
	"go-jewel-storefront/internal/pkg/logger"
)

func RunWorker() error {
	log.Println("[WORKER] Starting outbox processor...")
	cfg := config.Load()

	if cfg.DBURL == "" || cfg.KafkaBroker == "" {
		return errors.New("worker needs DB_URL and KAFKA_BROKER")
	}

	// 1. Connect to database
	db, err := connectDBWithRetry(cfg.DBURL, maxRetries)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Println("[WORKER] Database connected")

	if err := outbox.EnsureSchema(context.Background(), db); err != nil {
		return err
	}

	// 2. Setup Kafka writer
	if err := waitForKafka(cfg.KafkaBroker, maxRetries); err != nil {
		return err
	}
	writer := producer.NewWriter(cfg.KafkaBroker)
	defer writer.Close()
	log.Println("[WORKER] Kafka writer initialized")

	svc := outbox.NewService(outbox.NewRepository(db), "order", logger.New(cfg.Env).Named("outbox"))

	// 3. Start processor
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(ctx, svc, producer.NewPublisher(writer), cfg.OutboxInterval)

	// 4. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[WORKER] Shutting down...")
	cancel()
	time.Sleep(1 * time.Second)
	log.Println("[WORKER] Stopped")

	return nil
}
