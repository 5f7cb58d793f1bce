package contract

import (
	"context"

	"notevault-be/internal/entity"
	"notevault-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TagRepository interface {
	Create(ctx context.Context, tag *entity.Tag) error
	Update(ctx context.Context, tag *entity.Tag) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tag, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Link management
	CountNotes(ctx context.Context, tagId uuid.UUID) (int64, error)
	AttachToNote(ctx context.Context, noteId, tagId uuid.UUID) error
	DetachFromNote(ctx context.Context, noteId, tagId uuid.UUID) error
	FindByNoteId(ctx context.Context, noteId uuid.UUID) ([]*entity.Tag, error)
	DeleteLinksByNoteId(ctx context.Context, noteId uuid.UUID) error
	DeleteLinksByTagId(ctx context.Context, tagId uuid.UUID) error
}
