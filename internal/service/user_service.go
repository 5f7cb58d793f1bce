package service

import (
	"context"
	"errors"
	"time"

	"notevault-be/internal/dto"
	"notevault-be/internal/repository/specification"
	"notevault-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	Profile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) error
	ChangePassword(ctx context.Context, userId uuid.UUID, req *dto.ChangePasswordRequest) error
	DeleteAccount(ctx context.Context, userId uuid.UUID, req *dto.DeleteAccountRequest) error
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func (s *userService) Profile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	avatarURL := ""
	if user.AvatarURL != nil {
		avatarURL = *user.AvatarURL
	}

	return &dto.UserProfileResponse{
		Id:            user.Id,
		Email:         user.Email,
		FullName:      user.FullName,
		Role:          string(user.Role),
		Status:        string(user.Status),
		AvatarURL:     avatarURL,
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}

	user.FullName = req.FullName

	if req.Email != "" && req.Email != user.Email {
		existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.New("email already in use")
		}
		user.Email = req.Email
	}

	user.UpdatedAt = time.Now()

	return uow.UserRepository().Update(ctx, user)
}

func (s *userService) ChangePassword(ctx context.Context, userId uuid.UUID, req *dto.ChangePasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}

	if user.PasswordHash == nil {
		return errors.New("user registered via OAuth")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return errors.New("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return uow.UserRepository().UpdatePassword(ctx, userId, string(hash))
}

// DeleteAccount hard-deletes the user and everything they own in a single
// transaction. There is no grace period; exports are the user's job.
func (s *userService) DeleteAccount(ctx context.Context, userId uuid.UUID, req *dto.DeleteAccountRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}

	// OAuth-only accounts confirm with an empty password
	if user.PasswordHash != nil {
		if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
			return errors.New("password is incorrect")
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	// Trashed notes still own versions, comments and locks
	notes, err := uow.NoteRepository().FindAllUnscoped(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return err
	}

	noteIds := make([]uuid.UUID, 0, len(notes))
	for _, note := range notes {
		noteIds = append(noteIds, note.Id)
	}

	if err := uow.NoteVersionRepository().DeleteAllByNoteIds(ctx, noteIds); err != nil {
		return err
	}

	for _, noteId := range noteIds {
		if err := uow.CommentRepository().DeleteByNoteIdUnscoped(ctx, noteId); err != nil {
			return err
		}
		if err := uow.NoteLockRepository().DeleteByNoteId(ctx, noteId); err != nil {
			return err
		}
		if err := uow.TagRepository().DeleteLinksByNoteId(ctx, noteId); err != nil {
			return err
		}
	}

	if err := uow.NoteRepository().DeleteAllByUserIdUnscoped(ctx, userId); err != nil {
		return err
	}
	if err := uow.FolderRepository().DeleteAllByUserIdUnscoped(ctx, userId); err != nil {
		return err
	}
	if err := uow.TagRepository().DeleteAllByUserId(ctx, userId); err != nil {
		return err
	}
	if err := uow.ActivityRepository().DeleteAllByUserId(ctx, userId); err != nil {
		return err
	}
	if err := uow.UserRepository().DeleteRefreshTokensByUserId(ctx, userId); err != nil {
		return err
	}
	if err := uow.UserRepository().DeletePasswordResetTokensByUserId(ctx, userId); err != nil {
		return err
	}
	if err := uow.UserRepository().DeleteEmailVerificationTokensByUserId(ctx, userId); err != nil {
		return err
	}
	if err := uow.UserRepository().DeleteUserProvidersByUserId(ctx, userId); err != nil {
		return err
	}
	if err := uow.UserRepository().DeleteUnscoped(ctx, userId); err != nil {
		return err
	}

	return uow.Commit()
}
