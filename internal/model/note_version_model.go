package model

import (
	"time"

	"github.com/google/uuid"
)

type NoteVersion struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NoteId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_note_versions_note_version,priority:1"`
	Version   int       `gorm:"not null;uniqueIndex:idx_note_versions_note_version,priority:2"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text"`
	Excerpt   string    `gorm:"type:varchar(500)"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (NoteVersion) TableName() string {
	return "note_versions"
}
