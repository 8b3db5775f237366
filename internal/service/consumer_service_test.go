package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"smart-tools-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestConsumerPersistsAnalyticsRow(t *testing.T) {
	f := newFakeFactory()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	publisher := NewPublisherService("TEST_TOPIC", pubSub)
	consumer := NewConsumerService(pubSub, "TEST_TOPIC", f)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	assert.NoError(t, consumer.Consume(ctx))

	projectId := uuid.New()
	msg := dto.ToolRunMessage{
		UserId:     uuid.New(),
		ToolSlug:   "quiz-generator",
		ProjectId:  &projectId,
		RunsToday:  3,
		OccurredAt: time.Now(),
	}
	payload, err := json.Marshal(msg)
	assert.NoError(t, err)
	assert.NoError(t, publisher.Publish(ctx, payload))

	assert.Eventually(t, func() bool {
		return len(f.state.analytics) == 1
	}, 2*time.Second, 10*time.Millisecond, "consumer did not persist the analytics row")

	row := f.state.analytics[0]
	assert.Equal(t, msg.UserId, row.UserId)
	assert.NotNil(t, row.ToolSlug)
	assert.Equal(t, "quiz-generator", *row.ToolSlug)
	assert.Equal(t, projectId.String(), row.Payload["project_id"])
}

func TestConsumerAcksMalformedMessage(t *testing.T) {
	f := newFakeFactory()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	publisher := NewPublisherService("TEST_TOPIC", pubSub)
	consumer := NewConsumerService(pubSub, "TEST_TOPIC", f)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	assert.NoError(t, consumer.Consume(ctx))

	assert.NoError(t, publisher.Publish(ctx, []byte("{not json")))

	// The malformed message is dropped, not retried forever.
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, f.state.analytics)
}
