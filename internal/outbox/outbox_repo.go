package outbox

import (
	"context"
	"database/sql"
	_ "embed"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending = "PENDING"
	StatusSent    = "SENT"
	StatusFailed  = "FAILED"

	// MaxAttempts is how many failed publishes an event gets before it is left alone.
	MaxAttempts = 5
)

//go:embed schema.sql
var schema string

type Event struct {
	ID            uuid.UUID
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
	Status        string
	Attempts      int
	CreatedAt     time.Time
}

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

//go:generate mockgen -source=outbox_repo.go -destination=../mock/outbox/outbox_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx DBTX) Repository
	Create(ctx context.Context, e Event) error
	ListPending(ctx context.Context, limit int32) ([]Event, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
}

type outboxRepository struct {
	db DBTX
}

func NewRepository(db DBTX) Repository {
	return &outboxRepository{db: db}
}

// EnsureSchema creates the outbox table when it does not exist yet.
func EnsureSchema(ctx context.Context, db DBTX) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}

func (r *outboxRepository) WithTx(tx DBTX) Repository {
	return &outboxRepository{db: tx}
}

const createEvent = `INSERT INTO outbox_events (id, aggregate_type, aggregate_id, event_type, payload, status)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *outboxRepository) Create(ctx context.Context, e Event) error {
	_, err := r.db.ExecContext(ctx, createEvent,
		e.ID,
		e.AggregateType,
		e.AggregateID,
		e.EventType,
		e.Payload,
		StatusPending,
	)
	return err
}

const listPending = `SELECT id, aggregate_type, aggregate_id, event_type, payload, status, attempts, created_at
FROM outbox_events
WHERE status = 'PENDING' OR (status = 'FAILED' AND attempts < $2)
ORDER BY created_at
LIMIT $1`

func (r *outboxRepository) ListPending(ctx context.Context, limit int32) ([]Event, error) {
	rows, err := r.db.QueryContext(ctx, listPending, limit, MaxAttempts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(
			&e.ID,
			&e.AggregateType,
			&e.AggregateID,
			&e.EventType,
			&e.Payload,
			&e.Status,
			&e.Attempts,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

const markSent = `UPDATE outbox_events SET status = 'SENT', sent_at = now() WHERE id = $1`

func (r *outboxRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, markSent, id)
	return err
}

const markFailed = `UPDATE outbox_events SET status = 'FAILED', attempts = attempts + 1 WHERE id = $1`

func (r *outboxRepository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, markFailed, id)
	return err
}
