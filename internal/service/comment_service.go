package service

import (
	"context"
	"errors"
	"time"

	"notevault-be/internal/dto"
	"notevault-be/internal/entity"
	"notevault-be/internal/repository/memory"
	"notevault-be/internal/repository/specification"
	"notevault-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICommentService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCommentRequest) (*dto.CreateCommentResponse, error)
	List(ctx context.Context, userId uuid.UUID, noteId uuid.UUID) ([]dto.CommentResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateCommentRequest) error
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type commentService struct {
	uowFactory       unitofwork.RepositoryFactory
	unlockStore      *memory.UnlockRepository
	publisherService IPublisherService
}

func NewCommentService(
	uowFactory unitofwork.RepositoryFactory,
	unlockStore *memory.UnlockRepository,
	publisherService IPublisherService,
) ICommentService {
	return &commentService{
		uowFactory:       uowFactory,
		unlockStore:      unlockStore,
		publisherService: publisherService,
	}
}

// ownedNote checks note ownership and the lock. Comments sit next to the
// note's content, so they stay behind the same password.
func (s *commentService) ownedNote(ctx context.Context, uow unitofwork.UnitOfWork, userId, noteId uuid.UUID) (*entity.Note, error) {
	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: noteId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}
	if err := requireNoteAccess(ctx, uow, s.unlockStore, userId, noteId); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *commentService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCommentRequest) (*dto.CreateCommentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.ownedNote(ctx, uow, userId, req.NoteId)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}

	comment := entity.Comment{
		Id:        uuid.New(),
		NoteId:    req.NoteId,
		UserId:    userId,
		Body:      req.Body,
		CreatedAt: time.Now(),
	}

	if err := uow.CommentRepository().Create(ctx, &comment); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.publisherService, userId, entity.ActionCommentAdded, "comment", &comment.Id, map[string]interface{}{
		"note_id": req.NoteId,
	})

	return &dto.CreateCommentResponse{Id: comment.Id}, nil
}

func (s *commentService) List(ctx context.Context, userId uuid.UUID, noteId uuid.UUID) ([]dto.CommentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.ownedNote(ctx, uow, userId, noteId)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}

	comments, err := uow.CommentRepository().FindAll(ctx,
		specification.ByNoteID{NoteID: noteId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		items = append(items, dto.CommentResponse{
			Id:        comment.Id,
			NoteId:    comment.NoteId,
			UserId:    comment.UserId,
			Body:      comment.Body,
			CreatedAt: comment.CreatedAt,
			UpdatedAt: comment.UpdatedAt,
		})
	}

	return items, nil
}

func (s *commentService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateCommentRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	comment, err := uow.CommentRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if comment == nil {
		return errors.New("comment not found")
	}

	if err := requireNoteAccess(ctx, uow, s.unlockStore, userId, comment.NoteId); err != nil {
		return err
	}

	now := time.Now()
	comment.Body = req.Body
	comment.UpdatedAt = &now

	return uow.CommentRepository().Update(ctx, comment)
}

func (s *commentService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	comment, err := uow.CommentRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if comment == nil {
		return errors.New("comment not found")
	}

	if err := requireNoteAccess(ctx, uow, s.unlockStore, userId, comment.NoteId); err != nil {
		return err
	}

	return uow.CommentRepository().Delete(ctx, id)
}
