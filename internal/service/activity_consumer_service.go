package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"notevault-be/internal/dto"
	"notevault-be/internal/entity"
	"notevault-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IActivityConsumerService interface {
	Consume(ctx context.Context) error
}

type activityConsumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewActivityConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IActivityConsumerService {
	return &activityConsumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *activityConsumerService) Consume(ctx context.Context) error {
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

func (cs *activityConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.RecordActivityMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal activity message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if payload.UserId == uuid.Nil || payload.Action == "" {
		log.Printf("[ERROR] Dropping activity message with missing user or action")
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	event := &entity.ActivityEvent{
		Id:         uuid.New(),
		UserId:     payload.UserId,
		Action:     payload.Action,
		EntityType: payload.EntityType,
		EntityId:   payload.EntityId,
		Metadata:   payload.Metadata,
		CreatedAt:  time.Now(),
	}

	if err := uow.ActivityRepository().Create(ctx, event); err != nil {
		log.Printf("[ERROR] Failed to persist activity event %s: %v", payload.Action, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
