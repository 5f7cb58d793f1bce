package dto

import (
	"time"

	"github.com/google/uuid"
)

type SetNoteLockRequest struct {
	NoteId   uuid.UUID
	Password string  `json:"password" validate:"required,min=4"`
	Hint     *string `json:"hint" validate:"omitempty,max=255"`
}

type UnlockNoteRequest struct {
	NoteId   uuid.UUID
	Password string `json:"password" validate:"required"`
}

type UnlockNoteResponse struct {
	NoteId    uuid.UUID `json:"note_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type RemoveNoteLockRequest struct {
	NoteId   uuid.UUID
	Password string `json:"password" validate:"required"`
}

type NoteLockStatusResponse struct {
	NoteId   uuid.UUID `json:"note_id"`
	Locked   bool      `json:"locked"`
	Unlocked bool      `json:"unlocked"`
	Hint     *string   `json:"hint,omitempty"`
}
