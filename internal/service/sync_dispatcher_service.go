package service

import (
	"context"
	"encoding/json"
	"strings"

	"notevault-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// SyncDelivery pushes an event to every live session of a user. Implemented
// by the websocket hub.
type SyncDelivery interface {
	Send(userId uuid.UUID, eventType string, payload map[string]interface{})
}

type ISyncDispatcherService interface {
	Run(ctx context.Context) error
}

// syncDispatcherService tails the activity topic and forwards content
// changes to the websocket hub, so other devices refresh without polling.
type syncDispatcherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	delivery  SyncDelivery
}

func NewSyncDispatcherService(
	pubSub *gochannel.GoChannel,
	topicName string,
	delivery SyncDelivery,
) ISyncDispatcherService {
	return &syncDispatcherService{
		pubSub:    pubSub,
		topicName: topicName,
		delivery:  delivery,
	}
}

func (s *syncDispatcherService) Run(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(msg)
		}
	}()

	return nil
}

func (s *syncDispatcherService) processMessage(msg *message.Message) {
	// Always ack: live sync is best-effort, the activity consumer owns durability
	defer msg.Ack()

	var payload dto.RecordActivityMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return
	}
	if payload.UserId == uuid.Nil {
		return
	}

	// Only content changes matter to open editors; logins and the like do not
	if !strings.HasPrefix(payload.Action, "NOTE_") &&
		!strings.HasPrefix(payload.Action, "FOLDER_") &&
		!strings.HasPrefix(payload.Action, "TAG_") &&
		!strings.HasPrefix(payload.Action, "VERSION_") &&
		!strings.HasPrefix(payload.Action, "COMMENT_") {
		return
	}

	data := map[string]interface{}{
		"entity_type": payload.EntityType,
	}
	if payload.EntityId != nil {
		data["entity_id"] = payload.EntityId.String()
	}
	for k, v := range payload.Metadata {
		data[k] = v
	}

	if s.delivery != nil {
		s.delivery.Send(payload.UserId, payload.Action, data)
	}
}
