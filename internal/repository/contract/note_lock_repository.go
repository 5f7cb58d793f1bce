package contract

import (
	"context"

	"notevault-be/internal/entity"

	"github.com/google/uuid"
)

type NoteLockRepository interface {
	Save(ctx context.Context, lock *entity.NoteLock) error
	FindByNoteId(ctx context.Context, noteId uuid.UUID) (*entity.NoteLock, error)
	DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error
	FindNoteIdsForUser(ctx context.Context, userId uuid.UUID) ([]uuid.UUID, error)
}
