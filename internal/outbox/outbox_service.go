package outbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Publisher hands one event to the broker.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

//go:generate mockgen -source=outbox_service.go -destination=../mock/outbox/outbox_service_mock.go -package=mock
type Service interface {
	// Record stores an event for later publishing.
	Record(ctx context.Context, aggregateID, eventType string, payload any) error
	// Dispatch publishes one batch of pending events and reports how many went out.
	Dispatch(ctx context.Context, pub Publisher, limit int32) (int, error)
}

type service struct {
	repo          Repository
	aggregateType string
	logger        *zap.Logger
	newID         func() uuid.UUID
}

func NewService(repo Repository, aggregateType string, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		repo:          repo,
		aggregateType: aggregateType,
		logger:        logger,
		newID:         uuid.New,
	}
}

func (s *service) Record(ctx context.Context, aggregateID, eventType string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", eventType, err)
	}

	e := Event{
		ID:            s.newID(),
		AggregateType: s.aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Payload:       raw,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return fmt.Errorf("create outbox event: %w", err)
	}

	s.logger.Debug("outbox event recorded",
		zap.String("event_id", e.ID.String()),
		zap.String("event_type", eventType),
		zap.String("aggregate_id", aggregateID),
	)
	return nil
}

func (s *service) Dispatch(ctx context.Context, pub Publisher, limit int32) (int, error) {
	events, err := s.repo.ListPending(ctx, limit)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, e := range events {
		if err := pub.Publish(ctx, e); err != nil {
			s.logger.Warn("publish outbox event",
				zap.String("event_id", e.ID.String()),
				zap.Int("attempts", e.Attempts+1),
				zap.Error(err),
			)
			_ = s.repo.MarkFailed(ctx, e.ID)
			continue
		}

		if err := s.repo.MarkSent(ctx, e.ID); err != nil {
			s.logger.Warn("mark outbox event sent", zap.String("event_id", e.ID.String()), zap.Error(err))
			continue
		}
		sent++
	}
	return sent, nil
}
