package mapper

import (
	"time"

	"notevault-be/internal/entity"
	"notevault-be/internal/model"

	"gorm.io/gorm"
)

type CommentMapper struct{}

func NewCommentMapper() *CommentMapper {
	return &CommentMapper{}
}

func (m *CommentMapper) ToEntity(c *model.Comment) *entity.Comment {
	if c == nil {
		return nil
	}

	var deletedAt *time.Time
	if c.DeletedAt.Valid {
		t := c.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Comment{
		Id:        c.Id,
		NoteId:    c.NoteId,
		UserId:    c.UserId,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: c.DeletedAt.Valid,
	}
}

func (m *CommentMapper) ToModel(c *entity.Comment) *model.Comment {
	if c == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if c.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *c.DeletedAt, Valid: true}
	} else if c.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Comment{
		Id:        c.Id,
		NoteId:    c.NoteId,
		UserId:    c.UserId,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *CommentMapper) ToEntities(comments []*model.Comment) []*entity.Comment {
	entities := make([]*entity.Comment, len(comments))
	for i, c := range comments {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
