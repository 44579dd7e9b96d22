// internal/store/follows.go
package store

import "sync"

// FollowStore owns the follow relations. The following sets are keyed
// by the follower's identity so each authenticated user carries its own
// state; the followers set is fixed mock data with no mutator, shared
// by every identity.
type FollowStore struct {
	mu        sync.RWMutex
	following map[string]map[string]struct{}
	followers map[string]struct{}
}

func NewFollowStore(followers []string) *FollowStore {
	f := &FollowStore{
		following: make(map[string]map[string]struct{}),
		followers: make(map[string]struct{}, len(followers)),
	}
	for _, id := range followers {
		f.followers[id] = struct{}{}
	}
	return f
}

// Follow adds targetID to userID's following set. Following an already
// followed user is a no-op (set semantics).
func (s *FollowStore) Follow(userID, targetID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.following[userID]
	if !ok {
		set = make(map[string]struct{})
		s.following[userID] = set
	}
	set[targetID] = struct{}{}
}

// Unfollow removes targetID from userID's following set, idempotently.
func (s *FollowStore) Unfollow(userID, targetID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.following[userID], targetID)
}

func (s *FollowStore) IsFollowing(userID, targetID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.following[userID][targetID]
	return ok
}

func (s *FollowStore) FollowingIDs(userID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.following[userID]))
	for id := range s.following[userID] {
		out = append(out, id)
	}
	return out
}

func (s *FollowStore) FollowerIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.followers))
	for id := range s.followers {
		out = append(out, id)
	}
	return out
}

func (s *FollowStore) FollowingCount(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.following[userID])
}

func (s *FollowStore) FollowersCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.followers)
}
