// internal/store/follows_test.go
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFollowStoreFollowUnfollow(t *testing.T) {
	s := NewFollowStore(SeedFollowers())

	assert.False(t, s.IsFollowing("user1", "seller1"))

	s.Follow("user1", "seller1")
	assert.True(t, s.IsFollowing("user1", "seller1"))
	assert.Equal(t, 1, s.FollowingCount("user1"))

	// set semantics: a second follow changes nothing
	s.Follow("user1", "seller1")
	assert.Equal(t, 1, s.FollowingCount("user1"))

	s.Unfollow("user1", "seller1")
	assert.False(t, s.IsFollowing("user1", "seller1"))
	assert.Equal(t, 0, s.FollowingCount("user1"))

	// unfollowing someone not followed is a no-op
	s.Unfollow("user1", "seller1")
	assert.Equal(t, 0, s.FollowingCount("user1"))
}

func TestFollowStoreFollowingIsPerUser(t *testing.T) {
	s := NewFollowStore(SeedFollowers())

	s.Follow("user1", "seller1")
	s.Follow("user2", "seller2")

	assert.True(t, s.IsFollowing("user1", "seller1"))
	assert.False(t, s.IsFollowing("user2", "seller1"))
	assert.ElementsMatch(t, []string{"seller1"}, s.FollowingIDs("user1"))
	assert.ElementsMatch(t, []string{"seller2"}, s.FollowingIDs("user2"))

	// unfollowing under one identity leaves the other untouched
	s.Unfollow("user2", "seller2")
	assert.True(t, s.IsFollowing("user1", "seller1"))
	assert.Equal(t, 0, s.FollowingCount("user2"))
}

func TestFollowStoreFollowersAreFixed(t *testing.T) {
	s := NewFollowStore(SeedFollowers())

	assert.Equal(t, 3, s.FollowersCount())
	assert.ElementsMatch(t, []string{"seller2", "user2", "user3"}, s.FollowerIDs())

	// mutating a following set leaves followers untouched
	s.Follow("user1", "seller1")
	s.Unfollow("user1", "user2")
	assert.Equal(t, 3, s.FollowersCount())
}
