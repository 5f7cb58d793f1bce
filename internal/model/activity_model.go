package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ActivityEvent struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID      `gorm:"type:uuid;not null;index:idx_activity_user_created,priority:1"`
	Action     string         `gorm:"type:varchar(50);not null;index"`
	EntityType string         `gorm:"type:varchar(50)"`
	EntityId   *uuid.UUID     `gorm:"type:uuid"`
	Metadata   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index:idx_activity_user_created,priority:2"`
}

func (ActivityEvent) TableName() string {
	return "activity_events"
}
