// internal/services/feed_service.go
package services

import (
	"sort"
	"time"

	"github.com/stefanninkovic/carunity/internal/models"
	"github.com/stefanninkovic/carunity/internal/store"
)

type FeedService struct {
	cars    *store.CarStore
	wheels  *store.WheelStore
	follows *store.FollowStore
	users   *store.UserStore
}

type FeedItemType string

const (
	FeedItemCar   FeedItemType = "car"
	FeedItemWheel FeedItemType = "wheel"
)

type FeedItem struct {
	ID           string       `json:"id"`
	Type         FeedItemType `json:"type"`
	UserID       string       `json:"user_id"`
	UserName     string       `json:"user_name"`
	UserLocation string       `json:"user_location"`
	Timestamp    time.Time    `json:"timestamp"`
	Car          *models.Car  `json:"car,omitempty"`
	Wheel        *models.Wheel `json:"wheel,omitempty"`
}

type Feed struct {
	Cars   []FeedItem `json:"cars"`
	Wheels []FeedItem `json:"wheels"`
}

func NewFeedService(cars *store.CarStore, wheels *store.WheelStore, follows *store.FollowStore, users *store.UserStore) *FeedService {
	return &FeedService{
		cars:    cars,
		wheels:  wheels,
		follows: follows,
		users:   users,
	}
}

// Compose unions the listed cars and wheels authored by users the
// viewer follows into two sections, each ordered by creation time,
// newest first.
func (s *FeedService) Compose(viewerID string) Feed {
	following := make(map[string]struct{})
	for _, id := range s.follows.FollowingIDs(viewerID) {
		following[id] = struct{}{}
	}

	feed := Feed{
		Cars:   make([]FeedItem, 0),
		Wheels: make([]FeedItem, 0),
	}

	for _, car := range s.cars.List() {
		if _, ok := following[car.SellerID]; !ok || !car.Listed {
			continue
		}
		user, ok := s.users.Get(car.SellerID)
		if !ok {
			continue
		}
		car := car
		feed.Cars = append(feed.Cars, FeedItem{
			ID:           "car-" + car.ID,
			Type:         FeedItemCar,
			UserID:       user.ID,
			UserName:     user.Name,
			UserLocation: user.Location,
			Timestamp:    car.CreatedAt,
			Car:          &car,
		})
	}

	for _, wheel := range s.wheels.List() {
		if _, ok := following[wheel.UserID]; !ok || !wheel.Listed {
			continue
		}
		user, ok := s.users.Get(wheel.UserID)
		if !ok {
			continue
		}
		wheel := wheel
		feed.Wheels = append(feed.Wheels, FeedItem{
			ID:           "wheel-" + wheel.ID,
			Type:         FeedItemWheel,
			UserID:       user.ID,
			UserName:     user.Name,
			UserLocation: user.Location,
			Timestamp:    wheel.CreatedAt,
			Wheel:        &wheel,
		})
	}

	sort.Slice(feed.Cars, func(i, j int) bool {
		return feed.Cars[i].Timestamp.After(feed.Cars[j].Timestamp)
	})
	sort.Slice(feed.Wheels, func(i, j int) bool {
		return feed.Wheels[i].Timestamp.After(feed.Wheels[j].Timestamp)
	})

	return feed
}
