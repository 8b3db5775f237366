package service

import (
	"context"
	"encoding/json"
	"log"

	"smart-tools-be/internal/dto"
	"smart-tools-be/internal/entity"
	"smart-tools-be/internal/repository/unitofwork"

	"smart-tools-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the tool-run topic and turns each message into an
// append-only analytics row. It runs in process; losing a row on crash is
// acceptable, blocking the run path is not.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ToolRunMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal tool run message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	toolSlug := payload.ToolSlug
	row := &entity.AnalyticsEvent{
		Id:       uuid.New(),
		UserId:   payload.UserId,
		Type:     events.TypeToolRunCompleted,
		ToolSlug: &toolSlug,
		Payload: map[string]interface{}{
			"runs_today": payload.RunsToday,
		},
		OccurredAt: payload.OccurredAt,
	}
	if payload.ProjectId != nil {
		row.Payload["project_id"] = payload.ProjectId.String()
	}

	if err := uow.AnalyticsRepository().Create(ctx, row); err != nil {
		log.Printf("[ERROR] Failed to persist analytics event for user %s: %v", payload.UserId, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
