package model

import (
	"time"

	"github.com/google/uuid"
)

type Tag struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_tags_user_name,priority:2"`
	Color     string    `gorm:"type:varchar(20)"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tags_user_name,priority:1;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Tag) TableName() string {
	return "tags"
}

type NoteTag struct {
	NoteId    uuid.UUID `gorm:"type:uuid;primaryKey"`
	TagId     uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (NoteTag) TableName() string {
	return "note_tags"
}
