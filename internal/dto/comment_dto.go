package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCommentRequest struct {
	NoteId uuid.UUID
	Body   string `json:"body" validate:"required,max=5000"`
}

type CreateCommentResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateCommentRequest struct {
	Id   uuid.UUID
	Body string `json:"body" validate:"required,max=5000"`
}

type CommentResponse struct {
	Id        uuid.UUID  `json:"id"`
	NoteId    uuid.UUID  `json:"note_id"`
	UserId    uuid.UUID  `json:"user_id"`
	Body      string     `json:"body"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
