package entity

import (
	"time"

	"github.com/google/uuid"
)

type Tag struct {
	Id        uuid.UUID
	Name      string
	Color     string
	UserId    uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// NoteTag links a note to a tag. Both sides are owner-scoped through
// their parents, so the link itself carries no user id.
type NoteTag struct {
	NoteId    uuid.UUID
	TagId     uuid.UUID
	CreatedAt time.Time
}
