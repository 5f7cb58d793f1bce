package implementation

import (
	"context"
	"errors"

	"notevault-be/internal/entity"
	"notevault-be/internal/mapper"
	"notevault-be/internal/model"
	"notevault-be/internal/repository/contract"
	"notevault-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteVersionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteVersionMapper
}

func NewNoteVersionRepository(db *gorm.DB) contract.NoteVersionRepository {
	return &NoteVersionRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteVersionMapper(),
	}
}

func (r *NoteVersionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NoteVersionRepositoryImpl) Create(ctx context.Context, version *entity.NoteVersion) error {
	m := r.mapper.ToModel(version)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*version = *r.mapper.ToEntity(m)
	return nil
}

func (r *NoteVersionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.NoteVersion, error) {
	var m model.NoteVersion
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NoteVersionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteVersion, error) {
	var models []*model.NoteVersion
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *NoteVersionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.NoteVersion{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *NoteVersionRepositoryImpl) DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("note_id = ?", noteId).Delete(&model.NoteVersion{}).Error
}

func (r *NoteVersionRepositoryImpl) DeleteAllByNoteIds(ctx context.Context, noteIds []uuid.UUID) error {
	if len(noteIds) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("note_id IN ?", noteIds).Delete(&model.NoteVersion{}).Error
}
