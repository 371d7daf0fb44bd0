package consumer_test

import (
	"context"
	"testing"

	"go-jewel-storefront/internal/messaging/kafka/consumer"
	"go-jewel-storefront/internal/session"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedReader serves msgs once, then cancels the context.
type scriptedReader struct {
	msgs      []kafka.Message
	committed []kafka.Message
	cancel    context.CancelFunc
}

func (r *scriptedReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *scriptedReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func event(eventType, body string) kafka.Message {
	return kafka.Message{
		Value:   []byte(body),
		Headers: []kafka.Header{{Key: "event_type", Value: []byte(eventType)}},
	}
}

func TestConsumeMessages_OrderPlacedPurgesEveryBrowser(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := session.NewMemoryStore()
	for _, browser := range []string{"laptop", "phone"} {
		local := session.NewLocal(store, browser)
		require.NoError(t, session.Save(ctx, local, session.CartKey[[]string]("C1"), []string{"R1"}))
		require.NoError(t, local.Track(ctx, "C1"))
	}

	reader := &scriptedReader{
		cancel: cancel,
		msgs: []kafka.Message{
			event("ORDER_PLACED", `{"orderNo":"ORD1","custId":"C1"}`),
			event("SOMETHING_ELSE", `{}`),
			event("ORDER_PLACED", `not json`),
		},
	}

	consumer.ConsumeMessages(ctx, reader, store)

	for _, browser := range []string{"laptop", "phone"} {
		_, ok, err := session.Load(context.Background(), session.NewLocal(store, browser), session.CartKey[[]string]("C1"))
		require.NoError(t, err)
		assert.False(t, ok, browser)
	}

	// the malformed event stays uncommitted for a retry
	assert.Len(t, reader.committed, 2)
}
