package service

import (
	"context"
	"encoding/json"
	"fmt"

	"notevault-be/internal/dto"

	"github.com/google/uuid"
)

// recordActivity pushes an activity message onto the in-process bus. The
// statistics consumer persists it later, so a publish failure never fails
// the originating request.
func recordActivity(ctx context.Context, publisher IPublisherService, userId uuid.UUID, action, entityType string, entityId *uuid.UUID, metadata map[string]interface{}) {
	if publisher == nil {
		return
	}

	msg := dto.RecordActivityMessage{
		UserId:     userId,
		Action:     action,
		EntityType: entityType,
		EntityId:   entityId,
		Metadata:   metadata,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		fmt.Printf("[WARN] Failed to marshal activity message: %v\n", err)
		return
	}

	if err := publisher.Publish(ctx, payload); err != nil {
		fmt.Printf("[WARN] Failed to publish activity message: %v\n", err)
	}
}
