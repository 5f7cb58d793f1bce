package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// SaveUserProvider upserts with ON CONFLICT (provider_name, provider_user_id),
// which Postgres only accepts when a matching unique index exists.
func TestUserProviderHasUniqueProviderIdentity(t *testing.T) {
	s, err := schema.Parse(&UserProvider{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	name := s.LookUpField("ProviderName")
	require.NotNil(t, name)
	id := s.LookUpField("ProviderUserId")
	require.NotNil(t, id)

	assert.Equal(t, "idx_provider_identity", name.TagSettings["UNIQUEINDEX"])
	assert.Equal(t, "idx_provider_identity", id.TagSettings["UNIQUEINDEX"])
}
