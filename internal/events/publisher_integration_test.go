package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"
)

func setupKafka(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	container, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0")
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate kafka container: %v", err)
		}
	})

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

func TestKafkaPublisher_RoundTrip(t *testing.T) {
	broker := setupKafka(t)
	const topic = "storefront.orders.test"

	p := NewKafkaPublisher(topic, broker)
	t.Cleanup(func() { _ = p.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// the first write may race topic auto-creation
	require.Eventually(t, func() bool {
		return p.PublishOrder(ctx, OrderEvent{Type: OrderCompleted, OrderID: "o-42", Amount: 9000}) == nil
	}, 45*time.Second, time.Second)

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:   []string{broker},
		Topic:     topic,
		Partition: 0,
		MaxWait:   time.Second,
	})
	defer r.Close()

	msg, err := r.ReadMessage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "o-42", string(msg.Key))

	var got OrderEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, OrderCompleted, got.Type)
	assert.Equal(t, int64(9000), got.Amount)
}
