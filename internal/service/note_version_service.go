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

type INoteVersionService interface {
	List(ctx context.Context, userId uuid.UUID, noteId uuid.UUID) ([]dto.NoteVersionResponse, error)
	Show(ctx context.Context, userId uuid.UUID, noteId uuid.UUID, versionNum int) (*dto.ShowNoteVersionResponse, error)
	Restore(ctx context.Context, userId uuid.UUID, req *dto.RestoreVersionRequest) (*dto.RestoreVersionResponse, error)
}

type noteVersionService struct {
	uowFactory       unitofwork.RepositoryFactory
	unlockStore      *memory.UnlockRepository
	publisherService IPublisherService
}

func NewNoteVersionService(
	uowFactory unitofwork.RepositoryFactory,
	unlockStore *memory.UnlockRepository,
	publisherService IPublisherService,
) INoteVersionService {
	return &noteVersionService{
		uowFactory:       uowFactory,
		unlockStore:      unlockStore,
		publisherService: publisherService,
	}
}

// ownedNote resolves the note and enforces both ownership and the lock.
// Version history carries full content, so a locked note keeps its history
// behind the password too.
func (s *noteVersionService) ownedNote(ctx context.Context, uow unitofwork.UnitOfWork, userId, noteId uuid.UUID) (*entity.Note, error) {
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

func (s *noteVersionService) List(ctx context.Context, userId uuid.UUID, noteId uuid.UUID) ([]dto.NoteVersionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.ownedNote(ctx, uow, userId, noteId)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}

	versions, err := uow.NoteVersionRepository().FindAll(ctx,
		specification.ByNoteID{NoteID: noteId},
		specification.OrderBy{Field: "version", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.NoteVersionResponse, 0, len(versions))
	for _, v := range versions {
		items = append(items, dto.NoteVersionResponse{
			Id:        v.Id,
			NoteId:    v.NoteId,
			Version:   v.Version,
			Title:     v.Title,
			Excerpt:   v.Excerpt,
			CreatedAt: v.CreatedAt,
		})
	}

	return items, nil
}

func (s *noteVersionService) Show(ctx context.Context, userId uuid.UUID, noteId uuid.UUID, versionNum int) (*dto.ShowNoteVersionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.ownedNote(ctx, uow, userId, noteId)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}

	version, err := uow.NoteVersionRepository().FindOne(ctx,
		specification.ByNoteID{NoteID: noteId},
		specification.ByVersion{Version: versionNum},
	)
	if err != nil {
		return nil, err
	}
	if version == nil {
		return nil, nil
	}

	return &dto.ShowNoteVersionResponse{
		Id:        version.Id,
		NoteId:    version.NoteId,
		Version:   version.Version,
		Title:     version.Title,
		Content:   version.Content,
		CreatedAt: version.CreatedAt,
	}, nil
}

// Restore snapshots the note's current state first, so restoring an old
// version is itself undoable.
func (s *noteVersionService) Restore(ctx context.Context, userId uuid.UUID, req *dto.RestoreVersionRequest) (*dto.RestoreVersionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.ownedNote(ctx, uow, userId, req.NoteId)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}

	version, err := uow.NoteVersionRepository().FindOne(ctx,
		specification.ByNoteID{NoteID: req.NoteId},
		specification.ByVersion{Version: req.Version},
	)
	if err != nil {
		return nil, err
	}
	if version == nil {
		return nil, errors.New("version not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	snapshot := entity.NoteVersion{
		Id:        uuid.New(),
		NoteId:    note.Id,
		Version:   note.Version,
		Title:     note.Title,
		Content:   note.Content,
		Excerpt:   versionExcerpt(note.Content),
		CreatedAt: time.Now(),
	}
	if err := uow.NoteVersionRepository().Create(ctx, &snapshot); err != nil {
		return nil, err
	}

	now := time.Now()
	note.Title = version.Title
	note.Content = version.Content
	note.Version++
	note.UpdatedAt = &now

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	recordActivity(ctx, s.publisherService, userId, entity.ActionVersionRestore, "note", &note.Id, map[string]interface{}{
		"restored_version": req.Version,
		"new_version":      note.Version,
	})

	return &dto.RestoreVersionResponse{Id: note.Id, Version: note.Version}, nil
}
