// internal/store/wheels.go
package store

import (
	"sync"
	"time"

	"github.com/stefanninkovic/carunity/internal/models"
)

// WheelStore owns the mutable collection of wheel videos.
type WheelStore struct {
	mu     sync.RWMutex
	wheels []models.Wheel
	ids    *idGenerator
}

func NewWheelStore(seed []models.Wheel) *WheelStore {
	wheels := make([]models.Wheel, len(seed))
	copy(wheels, seed)
	return &WheelStore{
		wheels: wheels,
		ids:    newIDGenerator("wheel"),
	}
}

func (s *WheelStore) List() []models.Wheel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Wheel, len(s.wheels))
	copy(out, s.wheels)
	return out
}

func (s *WheelStore) Get(id string) (models.Wheel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, wheel := range s.wheels {
		if wheel.ID == id {
			return wheel, true
		}
	}
	return models.Wheel{}, false
}

// Add assigns a generated identifier and creation time, zeroes the like
// and view counters, and prepends the wheel.
func (s *WheelStore) Add(wheel models.Wheel) models.Wheel {
	wheel.ID = s.ids.next()
	wheel.Likes = 0
	wheel.Views = 0
	wheel.CreatedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.wheels = append([]models.Wheel{wheel}, s.wheels...)
	return wheel
}

func (s *WheelStore) Update(id string, patch models.WheelPatch) (models.Wheel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.wheels {
		if s.wheels[i].ID == id {
			patch.Apply(&s.wheels[i])
			return s.wheels[i], true
		}
	}
	return models.Wheel{}, false
}

func (s *WheelStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.wheels {
		if s.wheels[i].ID == id {
			s.wheels = append(s.wheels[:i], s.wheels[i+1:]...)
			return
		}
	}
}
