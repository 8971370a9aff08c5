package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/shopping-advisor/internal/recommendation/domain"
)

func TestPublishRecommendationServed(t *testing.T) {
	config := mocks.NewTestConfig()
	config.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, config)
	defer producer.Close()

	var sent *sarama.ProducerMessage
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		sent = msg
		return nil
	})

	pub := NewPublisherWithProducer(producer, nil)
	servedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	err := pub.PublishRecommendationServed(context.Background(), domain.RecommendationServed{
		Flow:       domain.FlowChat,
		Intent:     domain.IntentProductSearch,
		ProductIDs: []string{"p1", "p2"},
		UserID:     7,
		ServedAt:   servedAt,
	})
	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, TopicRecommendationsServed, sent.Topic)

	raw, err := sent.Value.Encode()
	require.NoError(t, err)
	var event RecommendationServedEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, EventTypeRecommendationServed, event.EventType)
	assert.Equal(t, "chat", event.Flow)
	assert.Equal(t, string(domain.IntentProductSearch), event.Intent)
	assert.Equal(t, []string{"p1", "p2"}, event.ProductIDs)
	assert.Equal(t, uint(7), event.UserID)
	assert.True(t, servedAt.Equal(event.Timestamp))

	headers := map[string]string{}
	for _, h := range sent.Headers {
		headers[string(h.Key)] = string(h.Value)
	}
	assert.Equal(t, EventTypeRecommendationServed, headers["event_type"])
	assert.Equal(t, event.EventID, headers["event_id"])
}

func TestPublishRecommendationServedError(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	defer producer.Close()
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	pub := NewPublisherWithProducer(producer, nil)
	err := pub.PublishRecommendationServed(context.Background(), domain.RecommendationServed{
		Flow:       domain.FlowMood,
		ProductIDs: []string{"p1"},
	})
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
}

func catalogMessage(t *testing.T, eventType string, event CatalogChangedEvent) *sarama.ConsumerMessage {
	t.Helper()
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return &sarama.ConsumerMessage{
		Topic: TopicCatalogChanged,
		Value: payload,
		Headers: []*sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(eventType)},
			{Key: []byte("event_id"), Value: []byte(event.EventID)},
		},
	}
}

func TestConsumerDispatchesCatalogChanged(t *testing.T) {
	c := newConsumer([]string{TopicCatalogChanged})
	var got CatalogChangedEvent
	c.RegisterHandler(EventTypeCatalogChanged, OnCatalogChanged(func(_ context.Context, e CatalogChangedEvent) error {
		got = e
		return nil
	}))

	ok := c.handleMessage(context.Background(), catalogMessage(t, EventTypeCatalogChanged, CatalogChangedEvent{
		EventID: "evt-1", ProductID: "sku-1", Change: "updated",
	}))
	assert.True(t, ok)
	assert.Equal(t, "sku-1", got.ProductID)
	assert.Equal(t, "updated", got.Change)
}

func TestConsumerSkipsUnroutableMessages(t *testing.T) {
	c := newConsumer([]string{TopicCatalogChanged})
	c.RegisterHandler(EventTypeCatalogChanged, func(context.Context, []byte) error {
		return errors.New("boom")
	})

	assert.False(t, c.handleMessage(context.Background(), &sarama.ConsumerMessage{Topic: TopicCatalogChanged}))
	assert.False(t, c.handleMessage(context.Background(), catalogMessage(t, "unknown.event", CatalogChangedEvent{})))
	assert.False(t, c.handleMessage(context.Background(), catalogMessage(t, EventTypeCatalogChanged, CatalogChangedEvent{})))
}

func TestOnCatalogChangedRejectsBadPayload(t *testing.T) {
	h := OnCatalogChanged(func(context.Context, CatalogChangedEvent) error { return nil })
	assert.Error(t, h(context.Background(), []byte("{")))
}
