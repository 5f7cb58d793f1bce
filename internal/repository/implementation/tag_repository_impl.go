package implementation

import (
	"context"
	"errors"
	"time"

	"notevault-be/internal/entity"
	"notevault-be/internal/mapper"
	"notevault-be/internal/model"
	"notevault-be/internal/repository/contract"
	"notevault-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TagRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TagMapper
}

func NewTagRepository(db *gorm.DB) contract.TagRepository {
	return &TagRepositoryImpl{
		db:     db,
		mapper: mapper.NewTagMapper(),
	}
}

func (r *TagRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TagRepositoryImpl) Create(ctx context.Context, tag *entity.Tag) error {
	m := r.mapper.ToModel(tag)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*tag = *r.mapper.ToEntity(m)
	return nil
}

func (r *TagRepositoryImpl) Update(ctx context.Context, tag *entity.Tag) error {
	m := r.mapper.ToModel(tag)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*tag = *r.mapper.ToEntity(m)
	return nil
}

func (r *TagRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Tag{}, id).Error
}

func (r *TagRepositoryImpl) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.Tag{}).Error
}

func (r *TagRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tag, error) {
	var m model.Tag
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TagRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error) {
	var models []*model.Tag
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TagRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Tag{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Link management

// CountNotes counts non-trashed notes carrying the tag.
func (r *TagRepositoryImpl) CountNotes(ctx context.Context, tagId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Note{}).
		Joins("JOIN note_tags ON note_tags.note_id = notes.id").
		Where("note_tags.tag_id = ?", tagId).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TagRepositoryImpl) AttachToNote(ctx context.Context, noteId, tagId uuid.UUID) error {
	// Idempotent: re-attaching an existing pair is a no-op
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO note_tags (note_id, tag_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (note_id, tag_id) DO NOTHING
	`, noteId, tagId, time.Now()).Error
}

func (r *TagRepositoryImpl) DetachFromNote(ctx context.Context, noteId, tagId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("note_id = ? AND tag_id = ?", noteId, tagId).
		Delete(&model.NoteTag{}).Error
}

func (r *TagRepositoryImpl) FindByNoteId(ctx context.Context, noteId uuid.UUID) ([]*entity.Tag, error) {
	var models []*model.Tag
	err := r.db.WithContext(ctx).
		Joins("JOIN note_tags ON note_tags.tag_id = tags.id").
		Where("note_tags.note_id = ?", noteId).
		Order("tags.name ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TagRepositoryImpl) DeleteLinksByNoteId(ctx context.Context, noteId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("note_id = ?", noteId).Delete(&model.NoteTag{}).Error
}

func (r *TagRepositoryImpl) DeleteLinksByTagId(ctx context.Context, tagId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("tag_id = ?", tagId).Delete(&model.NoteTag{}).Error
}
