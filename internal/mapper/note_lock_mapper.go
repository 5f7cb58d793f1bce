package mapper

import (
	"time"

	"notevault-be/internal/entity"
	"notevault-be/internal/model"
)

type NoteLockMapper struct{}

func NewNoteLockMapper() *NoteLockMapper {
	return &NoteLockMapper{}
}

func (m *NoteLockMapper) ToEntity(l *model.NoteLock) *entity.NoteLock {
	if l == nil {
		return nil
	}

	var updatedAt *time.Time
	if !l.UpdatedAt.IsZero() {
		t := l.UpdatedAt
		updatedAt = &t
	}

	return &entity.NoteLock{
		Id:           l.Id,
		NoteId:       l.NoteId,
		PasswordHash: l.PasswordHash,
		Hint:         l.Hint,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *NoteLockMapper) ToModel(l *entity.NoteLock) *model.NoteLock {
	if l == nil {
		return nil
	}

	var updatedAt time.Time
	if l.UpdatedAt != nil {
		updatedAt = *l.UpdatedAt
	}

	return &model.NoteLock{
		Id:           l.Id,
		NoteId:       l.NoteId,
		PasswordHash: l.PasswordHash,
		Hint:         l.Hint,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}
