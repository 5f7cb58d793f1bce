package implementation

import (
	"context"
	"errors"

	"notevault-be/internal/entity"
	"notevault-be/internal/mapper"
	"notevault-be/internal/model"
	"notevault-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteLockRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteLockMapper
}

func NewNoteLockRepository(db *gorm.DB) contract.NoteLockRepository {
	return &NoteLockRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteLockMapper(),
	}
}

// Save upserts so re-locking a note replaces its password in place.
func (r *NoteLockRepositoryImpl) Save(ctx context.Context, lock *entity.NoteLock) error {
	m := r.mapper.ToModel(lock)
	err := r.db.WithContext(ctx).Exec(`
		INSERT INTO note_locks (id, note_id, password_hash, hint, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (note_id)
		DO UPDATE SET password_hash = EXCLUDED.password_hash, hint = EXCLUDED.hint, updated_at = EXCLUDED.updated_at
	`, m.Id, m.NoteId, m.PasswordHash, m.Hint, m.CreatedAt, m.UpdatedAt).Error
	return err
}

func (r *NoteLockRepositoryImpl) FindByNoteId(ctx context.Context, noteId uuid.UUID) (*entity.NoteLock, error) {
	var m model.NoteLock
	if err := r.db.WithContext(ctx).Where("note_id = ?", noteId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NoteLockRepositoryImpl) DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("note_id = ?", noteId).Delete(&model.NoteLock{}).Error
}

func (r *NoteLockRepositoryImpl) FindNoteIdsForUser(ctx context.Context, userId uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.NoteLock{}).
		Joins("JOIN notes ON notes.id = note_locks.note_id").
		Where("notes.user_id = ?", userId).
		Pluck("note_locks.note_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
