package service

import (
	"context"
	"errors"
	"time"

	"notevault-be/internal/dto"
	"notevault-be/internal/entity"
	"notevault-be/internal/repository/specification"
	"notevault-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITagService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTagRequest) (*dto.CreateTagResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]dto.TagResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTagRequest) error
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Attach(ctx context.Context, userId uuid.UUID, req *dto.AttachTagRequest) error
	Detach(ctx context.Context, userId uuid.UUID, noteId, tagId uuid.UUID) error
}

type tagService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewTagService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) ITagService {
	return &tagService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *tagService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTagRequest) (*dto.CreateTagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Tag names are unique per user
	existing, err := uow.TagRepository().FindOne(ctx,
		specification.ByName{Name: req.Name},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("tag with this name already exists")
	}

	tag := entity.Tag{
		Id:        uuid.New(),
		Name:      req.Name,
		Color:     req.Color,
		UserId:    userId,
		CreatedAt: time.Now(),
	}

	if err := uow.TagRepository().Create(ctx, &tag); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.publisherService, userId, entity.ActionTagCreated, "tag", &tag.Id, map[string]interface{}{
		"name": tag.Name,
	})

	return &dto.CreateTagResponse{Id: tag.Id}, nil
}

func (s *tagService) List(ctx context.Context, userId uuid.UUID) ([]dto.TagResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tags, err := uow.TagRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "name", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.TagResponse, 0, len(tags))
	for _, tag := range tags {
		noteCount, err := uow.TagRepository().CountNotes(ctx, tag.Id)
		if err != nil {
			return nil, err
		}
		items = append(items, dto.TagResponse{
			Id:        tag.Id,
			Name:      tag.Name,
			Color:     tag.Color,
			NoteCount: noteCount,
			CreatedAt: tag.CreatedAt,
		})
	}

	return items, nil
}

func (s *tagService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTagRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tag, err := uow.TagRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if tag == nil {
		return errors.New("tag not found")
	}

	if req.Name != tag.Name {
		existing, err := uow.TagRepository().FindOne(ctx,
			specification.ByName{Name: req.Name},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.New("tag with this name already exists")
		}
	}

	now := time.Now()
	tag.Name = req.Name
	tag.Color = req.Color
	tag.UpdatedAt = &now

	return uow.TagRepository().Update(ctx, tag)
}

// Delete removes the tag and its note links. The notes themselves are untouched.
func (s *tagService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tag, err := uow.TagRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if tag == nil {
		return errors.New("tag not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.TagRepository().DeleteLinksByTagId(ctx, id); err != nil {
		return err
	}
	if err := uow.TagRepository().Delete(ctx, id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	recordActivity(ctx, s.publisherService, userId, entity.ActionTagDeleted, "tag", &id, map[string]interface{}{
		"name": tag.Name,
	})

	return nil
}

func (s *tagService) Attach(ctx context.Context, userId uuid.UUID, req *dto.AttachTagRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: req.NoteId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if note == nil {
		return errors.New("note not found")
	}

	tag, err := uow.TagRepository().FindOne(ctx,
		specification.ByID{ID: req.TagId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if tag == nil {
		return errors.New("tag not found")
	}

	return uow.TagRepository().AttachToNote(ctx, req.NoteId, req.TagId)
}

func (s *tagService) Detach(ctx context.Context, userId uuid.UUID, noteId, tagId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: noteId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if note == nil {
		return errors.New("note not found")
	}

	return uow.TagRepository().DetachFromNote(ctx, noteId, tagId)
}
