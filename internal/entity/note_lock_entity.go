package entity

import (
	"time"

	"github.com/google/uuid"
)

// NoteLock holds the per-note password. One lock per note.
type NoteLock struct {
	Id           uuid.UUID
	NoteId       uuid.UUID
	PasswordHash string
	Hint         *string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
