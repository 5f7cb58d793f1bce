package unitofwork

import (
	"context"

	"notevault-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	FolderRepository() contract.FolderRepository
	NoteRepository() contract.NoteRepository
	TagRepository() contract.TagRepository
	NoteVersionRepository() contract.NoteVersionRepository
	CommentRepository() contract.CommentRepository
	NoteLockRepository() contract.NoteLockRepository
	ActivityRepository() contract.ActivityRepository
}
