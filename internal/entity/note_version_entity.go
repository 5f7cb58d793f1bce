package entity

import (
	"time"

	"github.com/google/uuid"
)

// NoteVersion is an immutable snapshot of a note taken before an update
// or a restore overwrites its content.
type NoteVersion struct {
	Id        uuid.UUID
	NoteId    uuid.UUID
	Version   int
	Title     string
	Content   string
	Excerpt   string
	CreatedAt time.Time
}
