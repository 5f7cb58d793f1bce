package memory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// UnlockRepository tracks which locked notes a user has opened with the
// correct password. Sessions live in process memory only, so a restart
// re-locks everything.
type UnlockRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewUnlockRepository(ttl time.Duration) *UnlockRepository {
	// Purge expired unlock sessions every minute
	c := cache.New(ttl, 1*time.Minute)
	return &UnlockRepository{
		cache: c,
		ttl:   ttl,
	}
}

func unlockKey(userId, noteId uuid.UUID) string {
	return fmt.Sprintf("%s:%s", userId, noteId)
}

func (r *UnlockRepository) Grant(userId, noteId uuid.UUID) time.Time {
	expiresAt := time.Now().Add(r.ttl)
	r.cache.Set(unlockKey(userId, noteId), expiresAt, cache.DefaultExpiration)
	return expiresAt
}

func (r *UnlockRepository) IsUnlocked(userId, noteId uuid.UUID) bool {
	_, found := r.cache.Get(unlockKey(userId, noteId))
	return found
}

func (r *UnlockRepository) Revoke(userId, noteId uuid.UUID) {
	r.cache.Delete(unlockKey(userId, noteId))
}
