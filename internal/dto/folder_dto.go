package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFolderRequest struct {
	Name     string     `json:"name" validate:"required,max=255"`
	ParentId *uuid.UUID `json:"parent_id"`
}

type CreateFolderResponse struct {
	Id uuid.UUID `json:"id"`
}

type RenameFolderRequest struct {
	Id   uuid.UUID
	Name string `json:"name" validate:"required,max=255"`
}

type MoveFolderRequest struct {
	Id       uuid.UUID
	ParentId *uuid.UUID `json:"parent_id"`
}

type FolderResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	ParentId  *uuid.UUID `json:"parent_id"`
	NoteCount int64      `json:"note_count"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// FolderTreeNode is a folder with its children nested, for sidebar rendering.
type FolderTreeNode struct {
	Id        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	ParentId  *uuid.UUID        `json:"parent_id"`
	NoteCount int64             `json:"note_count"`
	Children  []*FolderTreeNode `json:"children"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt *time.Time        `json:"updated_at"`
}
