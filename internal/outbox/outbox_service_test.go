package outbox_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-jewel-storefront/internal/outbox"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	created []outbox.Event
	pending []outbox.Event
	sent    []uuid.UUID
	failed  []uuid.UUID
	err     error
}

func (m *memRepo) WithTx(outbox.DBTX) outbox.Repository { return m }

func (m *memRepo) Create(_ context.Context, e outbox.Event) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, e)
	return nil
}

func (m *memRepo) ListPending(context.Context, int32) ([]outbox.Event, error) {
	return m.pending, m.err
}

func (m *memRepo) MarkSent(_ context.Context, id uuid.UUID) error {
	m.sent = append(m.sent, id)
	return nil
}

func (m *memRepo) MarkFailed(_ context.Context, id uuid.UUID) error {
	m.failed = append(m.failed, id)
	return nil
}

type publishFunc func(ctx context.Context, e outbox.Event) error

func (f publishFunc) Publish(ctx context.Context, e outbox.Event) error { return f(ctx, e) }

func TestService_Record(t *testing.T) {
	repo := &memRepo{}
	svc := outbox.NewService(repo, "ORDER", nil)

	err := svc.Record(context.Background(), "ORD1", "ORDER_PLACED", map[string]string{"orderNo": "ORD1"})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	e := repo.created[0]
	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.Equal(t, "ORDER", e.AggregateType)
	assert.Equal(t, "ORD1", e.AggregateID)

	var body map[string]string
	require.NoError(t, json.Unmarshal(e.Payload, &body))
	assert.Equal(t, "ORD1", body["orderNo"])

	t.Run("repo_error", func(t *testing.T) {
		svc := outbox.NewService(&memRepo{err: errors.New("db down")}, "ORDER", nil)
		assert.Error(t, svc.Record(context.Background(), "ORD2", "ORDER_PLACED", nil))
	})
}

func TestService_Dispatch(t *testing.T) {
	ok, bad := uuid.New(), uuid.New()
	repo := &memRepo{pending: []outbox.Event{{ID: ok}, {ID: bad}}}
	svc := outbox.NewService(repo, "ORDER", nil)

	pub := publishFunc(func(_ context.Context, e outbox.Event) error {
		if e.ID == bad {
			return errors.New("broker unavailable")
		}
		return nil
	})

	sent, err := svc.Dispatch(context.Background(), pub, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, []uuid.UUID{ok}, repo.sent)
	assert.Equal(t, []uuid.UUID{bad}, repo.failed)
}
