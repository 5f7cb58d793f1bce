package dto

import (
	"time"

	"github.com/google/uuid"
)

type NoteVersionResponse struct {
	Id        uuid.UUID `json:"id"`
	NoteId    uuid.UUID `json:"note_id"`
	Version   int       `json:"version"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	CreatedAt time.Time `json:"created_at"`
}

type ShowNoteVersionResponse struct {
	Id        uuid.UUID `json:"id"`
	NoteId    uuid.UUID `json:"note_id"`
	Version   int       `json:"version"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type RestoreVersionRequest struct {
	NoteId  uuid.UUID
	Version int `json:"version" validate:"required,min=1"`
}

type RestoreVersionResponse struct {
	Id      uuid.UUID `json:"id"`
	Version int       `json:"version"`
}
