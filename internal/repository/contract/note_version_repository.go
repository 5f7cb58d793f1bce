package contract

import (
	"context"

	"notevault-be/internal/entity"
	"notevault-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteVersionRepository interface {
	Create(ctx context.Context, version *entity.NoteVersion) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NoteVersion, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteVersion, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error
	DeleteAllByNoteIds(ctx context.Context, noteIds []uuid.UUID) error
}
