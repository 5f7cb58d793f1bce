package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityEvent is the durable record behind the usage statistics feed.
type ActivityEvent struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	Action     string
	EntityType string
	EntityId   *uuid.UUID
	Metadata   map[string]interface{}
	CreatedAt  time.Time
}

const (
	ActionNoteCreated    = "NOTE_CREATED"
	ActionNoteUpdated    = "NOTE_UPDATED"
	ActionNoteDeleted    = "NOTE_DELETED"
	ActionNoteRestored   = "NOTE_RESTORED"
	ActionNotePurged     = "NOTE_PURGED"
	ActionNoteMoved      = "NOTE_MOVED"
	ActionVersionRestore = "VERSION_RESTORED"
	ActionFolderCreated  = "FOLDER_CREATED"
	ActionFolderDeleted  = "FOLDER_DELETED"
	ActionTagCreated     = "TAG_CREATED"
	ActionTagDeleted     = "TAG_DELETED"
	ActionCommentAdded   = "COMMENT_ADDED"
	ActionUserLogin      = "USER_LOGIN"
)
