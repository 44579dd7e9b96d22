// internal/services/follow_service.go
package services

import (
	"github.com/stefanninkovic/carunity/internal/models"
	"github.com/stefanninkovic/carunity/internal/store"
)

type FollowService struct {
	follows *store.FollowStore
	users   *store.UserStore
}

type FollowCounts struct {
	Following int `json:"following"`
	Followers int `json:"followers"`
}

func NewFollowService(follows *store.FollowStore, users *store.UserStore) *FollowService {
	return &FollowService{
		follows: follows,
		users:   users,
	}
}

func (s *FollowService) Follow(userID, targetID string) {
	s.follows.Follow(userID, targetID)
}

func (s *FollowService) Unfollow(userID, targetID string) {
	s.follows.Unfollow(userID, targetID)
}

func (s *FollowService) IsFollowing(userID, targetID string) bool {
	return s.follows.IsFollowing(userID, targetID)
}

func (s *FollowService) Counts(userID string) FollowCounts {
	return FollowCounts{
		Following: s.follows.FollowingCount(userID),
		Followers: s.follows.FollowersCount(),
	}
}

// Following returns the users userID follows, with their user details.
// Identifiers with no matching identity are skipped.
func (s *FollowService) Following(userID string) []models.User {
	return s.hydrate(s.follows.FollowingIDs(userID))
}

// Followers returns the fixed mock follower identities.
func (s *FollowService) Followers() []models.User {
	return s.hydrate(s.follows.FollowerIDs())
}

func (s *FollowService) hydrate(ids []string) []models.User {
	out := make([]models.User, 0, len(ids))
	for _, id := range ids {
		if user, ok := s.users.Get(id); ok {
			out = append(out, user)
		}
	}
	return out
}
