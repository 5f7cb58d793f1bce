package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTagRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

type CreateTagResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateTagRequest struct {
	Id    uuid.UUID
	Name  string `json:"name" validate:"required,max=100"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

type TagResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	NoteCount int64     `json:"note_count,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type AttachTagRequest struct {
	NoteId uuid.UUID
	TagId  uuid.UUID `json:"tag_id" validate:"required"`
}
