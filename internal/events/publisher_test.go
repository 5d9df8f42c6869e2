package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *captureWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *captureWriter) Close() error { return nil }

func TestKafkaPublisher_PublishOrder(t *testing.T) {
	w := &captureWriter{}
	p := &KafkaPublisher{writer: w}
	coupon := "DATES10"
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	err := p.PublishOrder(context.Background(), OrderEvent{
		Type: OrderCompleted, OrderID: "o-1", UserID: "u-1", Amount: 9000,
		CouponCode: &coupon, TransactionID: "T1", OccurredAt: at,
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "o-1", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, OrderCompleted, string(msg.Headers[0].Value))

	var got OrderEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, int64(9000), got.Amount)
	assert.Equal(t, "DATES10", *got.CouponCode)
	assert.True(t, at.Equal(got.OccurredAt))
}

func TestKafkaPublisher_WrapsWriteError(t *testing.T) {
	cause := errors.New("broker down")
	p := &KafkaPublisher{writer: &captureWriter{err: cause}}

	err := p.PublishOrder(context.Background(), OrderEvent{Type: OrderFailed, OrderID: "o-2"})
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "o-2")
}

func TestNoop(t *testing.T) {
	var p Publisher = Noop{}
	assert.NoError(t, p.PublishOrder(context.Background(), OrderEvent{Type: OrderCompleted}))
	assert.NoError(t, p.Close())
}
