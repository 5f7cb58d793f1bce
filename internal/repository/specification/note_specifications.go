package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByFolderID struct {
	FolderID uuid.UUID
}

func (s ByFolderID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("folder_id = ?", s.FolderID)
}

// NoteOwnedByUser uses an explicit table alias to avoid ambiguity in joins.
type NoteOwnedByUser struct {
	UserID uuid.UUID
}

func (s NoteOwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.user_id = ?", s.UserID)
}

// ByTitleLike matches titles case-insensitively on a partial term.
type ByTitleLike struct {
	Title string
}

func (s ByTitleLike) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title ILIKE ?", "%"+s.Title+"%")
}

// NoteSearchQuery searches the term in title OR content.
type NoteSearchQuery struct {
	Query string
}

func (s NoteSearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("notes.title ILIKE ? OR notes.content ILIKE ?", pattern, pattern)
}

// ByFolderName joins folders to filter notes by their folder's name.
type ByFolderName struct {
	Name string
}

func (s ByFolderName) Apply(db *gorm.DB) *gorm.DB {
	return db.Joins("JOIN folders ON folders.id = notes.folder_id").
		Where("folders.name ILIKE ?", "%"+s.Name+"%")
}

// ByTagName joins the tag link table to filter notes carrying a tag.
type ByTagName struct {
	Name string
}

func (s ByTagName) Apply(db *gorm.DB) *gorm.DB {
	return db.Joins("JOIN note_tags ON note_tags.note_id = notes.id").
		Joins("JOIN tags ON tags.id = note_tags.tag_id").
		Where("tags.name ILIKE ?", s.Name)
}

// ByTagID joins the tag link table to filter notes carrying a specific tag.
type ByTagID struct {
	TagID uuid.UUID
}

func (s ByTagID) Apply(db *gorm.DB) *gorm.DB {
	return db.Joins("JOIN note_tags ON note_tags.note_id = notes.id").
		Where("note_tags.tag_id = ?", s.TagID)
}

// ByVersion filters note versions by their version number.
type ByVersion struct {
	Version int
}

func (s ByVersion) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("version = ?", s.Version)
}

// PinnedFirst orders pinned notes ahead of the rest, newest first within each group.
type PinnedFirst struct{}

func (s PinnedFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("pinned DESC").Order("updated_at DESC")
}
