package outbox_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-jewel-storefront/internal/outbox"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs(id, "ORDER", "ORD123", "ORDER_PLACED", []byte(`{"orderNo":"ORD123"}`), outbox.StatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := outbox.NewRepository(db)
	err = repo.Create(context.Background(), outbox.Event{
		ID:            id,
		AggregateType: "ORDER",
		AggregateID:   "ORD123",
		EventType:     "ORDER_PLACED",
		Payload:       []byte(`{"orderNo":"ORD123"}`),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	created := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "aggregate_type", "aggregate_id", "event_type", "payload", "status", "attempts", "created_at"}).
		AddRow(id.String(), "ORDER", "ORD1", "ORDER_PLACED", []byte(`{}`), outbox.StatusFailed, 2, created)

	mock.ExpectQuery(regexp.QuoteMeta("FROM outbox_events")).
		WithArgs(int32(10), outbox.MaxAttempts).
		WillReturnRows(rows)

	events, err := outbox.NewRepository(db).ListPending(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, id, events[0].ID)
	assert.Equal(t, 2, events[0].Attempts)
	assert.Equal(t, created, events[0].CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkSentAndFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("SET status = 'SENT'")).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("attempts = attempts + 1")).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))

	repo := outbox.NewRepository(db)
	require.NoError(t, repo.MarkSent(context.Background(), id))
	require.NoError(t, repo.MarkFailed(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_WithTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	repo := outbox.NewRepository(db).WithTx(tx)
	require.NoError(t, repo.Create(context.Background(), outbox.Event{ID: uuid.New(), Payload: []byte(`{}`)}))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
