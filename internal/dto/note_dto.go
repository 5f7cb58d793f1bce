package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title    string      `json:"title" validate:"max=500"`
	Content  string      `json:"content"`
	FolderId *uuid.UUID  `json:"folder_id"`
	TagIds   []uuid.UUID `json:"tag_ids"`
}

type CreateNoteResponse struct {
	Id uuid.UUID `json:"id"`
}

// BreadcrumbItem is a single folder in the ancestry path from root to the
// note's parent. The frontend uses it for deep linking and sidebar expansion.
type BreadcrumbItem struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ShowNoteResponse struct {
	Id         uuid.UUID        `json:"id"`
	Title      string           `json:"title"`
	Content    string           `json:"content"`
	FolderId   *uuid.UUID       `json:"folder_id"`
	Pinned     bool             `json:"pinned"`
	Version    int              `json:"version"`
	Locked     bool             `json:"locked"`
	Tags       []TagResponse    `json:"tags"`
	Breadcrumb []BreadcrumbItem `json:"breadcrumb"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  *time.Time       `json:"updated_at"`
}

// NoteListItem omits content so list endpoints stay light. Excerpt carries
// the first characters of the plain-text rendering instead.
type NoteListItem struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Excerpt   string     `json:"excerpt"`
	FolderId  *uuid.UUID `json:"folder_id"`
	Pinned    bool       `json:"pinned"`
	Locked    bool       `json:"locked"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type UpdateNoteRequest struct {
	Id      uuid.UUID
	Title   string `json:"title" validate:"max=500"`
	Content string `json:"content"`
}

type UpdateNoteResponse struct {
	Id      uuid.UUID `json:"id"`
	Version int       `json:"version"`
}

type MoveNoteRequest struct {
	Id       uuid.UUID
	FolderId *uuid.UUID `json:"folder_id"`
}

type MoveNoteResponse struct {
	Id uuid.UUID `json:"id"`
}

type PinNoteRequest struct {
	Id     uuid.UUID
	Pinned bool `json:"pinned"`
}

type TrashedNoteResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	FolderId  *uuid.UUID `json:"folder_id"`
	DeletedAt time.Time  `json:"deleted_at"`
}

type SearchNoteResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Excerpt   string     `json:"excerpt"`
	FolderId  *uuid.UUID `json:"folder_id"`
	Locked    bool       `json:"locked"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type ExportNoteResponse struct {
	Id       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Format   string    `json:"format"`
	Content  string    `json:"content"`
	MimeType string    `json:"mime_type"`
}
