package dto

import "github.com/google/uuid"

// RecordActivityMessage is the payload exchanged over the activity topic
// between services and the background consumer.
type RecordActivityMessage struct {
	UserId     uuid.UUID              `json:"user_id"`
	Action     string                 `json:"action"`
	EntityType string                 `json:"entity_type"`
	EntityId   *uuid.UUID             `json:"entity_id,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}
