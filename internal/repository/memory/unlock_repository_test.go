package memory

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUnlockGrantAndCheck(t *testing.T) {
	repo := NewUnlockRepository(5 * time.Minute)
	userId := uuid.New()
	noteId := uuid.New()

	assert.False(t, repo.IsUnlocked(userId, noteId))

	expiresAt := repo.Grant(userId, noteId)
	assert.True(t, expiresAt.After(time.Now()))
	assert.True(t, repo.IsUnlocked(userId, noteId))

	// A session belongs to a single user/note pair
	assert.False(t, repo.IsUnlocked(uuid.New(), noteId))
	assert.False(t, repo.IsUnlocked(userId, uuid.New()))
}

func TestUnlockRevoke(t *testing.T) {
	repo := NewUnlockRepository(5 * time.Minute)
	userId := uuid.New()
	noteId := uuid.New()

	repo.Grant(userId, noteId)
	repo.Revoke(userId, noteId)

	assert.False(t, repo.IsUnlocked(userId, noteId))
}

func TestUnlockExpires(t *testing.T) {
	repo := NewUnlockRepository(30 * time.Millisecond)
	userId := uuid.New()
	noteId := uuid.New()

	repo.Grant(userId, noteId)
	assert.True(t, repo.IsUnlocked(userId, noteId))

	time.Sleep(60 * time.Millisecond)
	assert.False(t, repo.IsUnlocked(userId, noteId))
}
