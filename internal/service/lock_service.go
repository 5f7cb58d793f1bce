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
	"golang.org/x/crypto/bcrypt"
)

var ErrWrongLockPassword = errors.New("incorrect note password")

type ILockService interface {
	SetLock(ctx context.Context, userId uuid.UUID, req *dto.SetNoteLockRequest) error
	Unlock(ctx context.Context, userId uuid.UUID, req *dto.UnlockNoteRequest) (*dto.UnlockNoteResponse, error)
	RemoveLock(ctx context.Context, userId uuid.UUID, req *dto.RemoveNoteLockRequest) error
	Status(ctx context.Context, userId uuid.UUID, noteId uuid.UUID) (*dto.NoteLockStatusResponse, error)
}

type lockService struct {
	uowFactory  unitofwork.RepositoryFactory
	unlockStore *memory.UnlockRepository
}

func NewLockService(
	uowFactory unitofwork.RepositoryFactory,
	unlockStore *memory.UnlockRepository,
) ILockService {
	return &lockService{
		uowFactory:  uowFactory,
		unlockStore: unlockStore,
	}
}

func (s *lockService) ownedNote(ctx context.Context, uow unitofwork.UnitOfWork, userId, noteId uuid.UUID) (*entity.Note, error) {
	return uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: noteId},
		specification.UserOwnedBy{UserID: userId},
	)
}

// SetLock creates or replaces the note's password. Replacing an existing
// lock requires an active unlock session, so a stolen device cannot swap
// the password on a note it cannot open.
func (s *lockService) SetLock(ctx context.Context, userId uuid.UUID, req *dto.SetNoteLockRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.ownedNote(ctx, uow, userId, req.NoteId)
	if err != nil {
		return err
	}
	if note == nil {
		return errors.New("note not found")
	}

	existing, err := uow.NoteLockRepository().FindByNoteId(ctx, req.NoteId)
	if err != nil {
		return err
	}
	if existing != nil && !s.unlockStore.IsUnlocked(userId, req.NoteId) {
		return ErrNoteLocked
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	lock := entity.NoteLock{
		Id:           uuid.New(),
		NoteId:       req.NoteId,
		PasswordHash: string(hash),
		Hint:         req.Hint,
		CreatedAt:    now,
		UpdatedAt:    &now,
	}
	if existing != nil {
		lock.Id = existing.Id
		lock.CreatedAt = existing.CreatedAt
	}

	if err := uow.NoteLockRepository().Save(ctx, &lock); err != nil {
		return err
	}

	// A fresh lock starts locked for everyone, including this session
	s.unlockStore.Revoke(userId, req.NoteId)

	return nil
}

func (s *lockService) Unlock(ctx context.Context, userId uuid.UUID, req *dto.UnlockNoteRequest) (*dto.UnlockNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.ownedNote(ctx, uow, userId, req.NoteId)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}

	lock, err := uow.NoteLockRepository().FindByNoteId(ctx, req.NoteId)
	if err != nil {
		return nil, err
	}
	if lock == nil {
		return nil, errors.New("note is not locked")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(lock.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrWrongLockPassword
	}

	expiresAt := s.unlockStore.Grant(userId, req.NoteId)

	return &dto.UnlockNoteResponse{
		NoteId:    req.NoteId,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *lockService) RemoveLock(ctx context.Context, userId uuid.UUID, req *dto.RemoveNoteLockRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.ownedNote(ctx, uow, userId, req.NoteId)
	if err != nil {
		return err
	}
	if note == nil {
		return errors.New("note not found")
	}

	lock, err := uow.NoteLockRepository().FindByNoteId(ctx, req.NoteId)
	if err != nil {
		return err
	}
	if lock == nil {
		return errors.New("note is not locked")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(lock.PasswordHash), []byte(req.Password)); err != nil {
		return ErrWrongLockPassword
	}

	if err := uow.NoteLockRepository().DeleteByNoteId(ctx, req.NoteId); err != nil {
		return err
	}

	s.unlockStore.Revoke(userId, req.NoteId)

	return nil
}

func (s *lockService) Status(ctx context.Context, userId uuid.UUID, noteId uuid.UUID) (*dto.NoteLockStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.ownedNote(ctx, uow, userId, noteId)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}

	lock, err := uow.NoteLockRepository().FindByNoteId(ctx, noteId)
	if err != nil {
		return nil, err
	}

	resp := &dto.NoteLockStatusResponse{NoteId: noteId}
	if lock != nil {
		resp.Locked = true
		resp.Unlocked = s.unlockStore.IsUnlocked(userId, noteId)
		resp.Hint = lock.Hint
	}

	return resp, nil
}
