// internal/services/follow_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stefanninkovic/carunity/internal/store"
)

func newFollowFixture(t *testing.T) *FollowService {
	t.Helper()
	users, err := store.NewUserStore(store.SeedUsers())
	require.NoError(t, err)
	return NewFollowService(store.NewFollowStore(store.SeedFollowers()), users)
}

func TestFollowServiceCounts(t *testing.T) {
	svc := newFollowFixture(t)

	counts := svc.Counts("user1")
	assert.Equal(t, 0, counts.Following)
	assert.Equal(t, 3, counts.Followers)

	svc.Follow("user1", "seller1")
	counts = svc.Counts("user1")
	assert.Equal(t, 1, counts.Following)
	assert.Equal(t, 3, counts.Followers)
}

func TestFollowServiceStateIsPerUser(t *testing.T) {
	svc := newFollowFixture(t)

	svc.Follow("user1", "seller1")

	assert.True(t, svc.IsFollowing("user1", "seller1"))
	assert.False(t, svc.IsFollowing("user2", "seller1"))
	assert.Equal(t, 1, svc.Counts("user1").Following)
	assert.Equal(t, 0, svc.Counts("user2").Following)
	assert.Empty(t, svc.Following("user2"))
}

func TestFollowServiceFollowingHydratesUsers(t *testing.T) {
	svc := newFollowFixture(t)

	svc.Follow("user1", "seller1")
	svc.Follow("user1", "ghost-user")

	following := svc.Following("user1")
	// the unknown id is skipped, not surfaced as an empty user
	require.Len(t, following, 1)
	assert.Equal(t, "Marco Bianchi", following[0].Name)
}

func TestFollowServiceFollowersHydrated(t *testing.T) {
	svc := newFollowFixture(t)

	followers := svc.Followers()
	require.Len(t, followers, 3)

	names := make([]string, 0, len(followers))
	for _, u := range followers {
		names = append(names, u.Name)
	}
	assert.ElementsMatch(t, []string{"Anna Keller", "Luca Meier", "Sophie Brunner"}, names)
}
