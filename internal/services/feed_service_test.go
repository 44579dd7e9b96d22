// internal/services/feed_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stefanninkovic/carunity/internal/store"
)

func newFeedFixture(t *testing.T) (*FeedService, *store.FollowStore) {
	t.Helper()
	users, err := store.NewUserStore(store.SeedUsers())
	require.NoError(t, err)
	cars := store.NewCarStore(store.SeedCars())
	wheels := store.NewWheelStore(store.SeedWheels())
	follows := store.NewFollowStore(store.SeedFollowers())
	return NewFeedService(cars, wheels, follows, users), follows
}

func TestFeedEmptyWhenFollowingNobody(t *testing.T) {
	svc, _ := newFeedFixture(t)

	feed := svc.Compose("user1")
	assert.Empty(t, feed.Cars)
	assert.Empty(t, feed.Wheels)
}

func TestFeedShowsFollowedUsersContent(t *testing.T) {
	svc, follows := newFeedFixture(t)
	follows.Follow("user1", "seller1")

	feed := svc.Compose("user1")

	// seller1 has car1, car3 listed and car5 unlisted
	require.Len(t, feed.Cars, 2)
	for _, item := range feed.Cars {
		assert.Equal(t, FeedItemCar, item.Type)
		assert.Equal(t, "seller1", item.UserID)
		assert.Equal(t, "Marco Bianchi", item.UserName)
		require.NotNil(t, item.Car)
		assert.True(t, item.Car.Listed)
	}
	assert.Equal(t, "car-car1", feed.Cars[0].ID)

	// seller1 has wheel1 listed and wheel4 unlisted
	require.Len(t, feed.Wheels, 1)
	assert.Equal(t, "wheel-wheel1", feed.Wheels[0].ID)
	assert.Equal(t, FeedItemWheel, feed.Wheels[0].Type)
}

func TestFeedIsScopedToTheViewer(t *testing.T) {
	svc, follows := newFeedFixture(t)
	follows.Follow("user1", "seller1")

	feed := svc.Compose("user2")
	assert.Empty(t, feed.Cars)
	assert.Empty(t, feed.Wheels)
}

func TestFeedOrderedNewestFirst(t *testing.T) {
	svc, follows := newFeedFixture(t)
	follows.Follow("user1", "seller1")
	follows.Follow("user1", "seller2")

	feed := svc.Compose("user1")
	require.Len(t, feed.Cars, 4)
	for i := 1; i < len(feed.Cars); i++ {
		assert.False(t, feed.Cars[i-1].Timestamp.Before(feed.Cars[i].Timestamp))
	}

	require.Len(t, feed.Wheels, 2)
	assert.False(t, feed.Wheels[0].Timestamp.Before(feed.Wheels[1].Timestamp))
}

func TestFeedDropsContentAfterUnfollow(t *testing.T) {
	svc, follows := newFeedFixture(t)
	follows.Follow("user1", "seller1")
	follows.Follow("user1", "user2")

	feed := svc.Compose("user1")
	require.Len(t, feed.Wheels, 2)

	follows.Unfollow("user1", "seller1")
	feed = svc.Compose("user1")
	require.Len(t, feed.Wheels, 1)
	assert.Equal(t, "user2", feed.Wheels[0].UserID)
	assert.Empty(t, feed.Cars)
}
