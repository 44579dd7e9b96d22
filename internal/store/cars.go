// internal/store/cars.go
package store

import (
	"sync"
	"time"

	"github.com/stefanninkovic/carunity/internal/models"
)

// CarStore owns the mutable collection of car listings. It is the only
// holder of the backing slice; every read hands out copies.
type CarStore struct {
	mu   sync.RWMutex
	cars []models.Car
	ids  *idGenerator
}

func NewCarStore(seed []models.Car) *CarStore {
	cars := make([]models.Car, len(seed))
	copy(cars, seed)
	return &CarStore{
		cars: cars,
		ids:  newIDGenerator("car"),
	}
}

// List returns the full collection, newest creations first.
func (s *CarStore) List() []models.Car {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Car, len(s.cars))
	copy(out, s.cars)
	return out
}

func (s *CarStore) Get(id string) (models.Car, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, car := range s.cars {
		if car.ID == id {
			return car, true
		}
	}
	return models.Car{}, false
}

// Add assigns a generated identifier and creation time, then prepends the
// listing. The caller decides visibility; Add never fails.
func (s *CarStore) Add(car models.Car) models.Car {
	car.ID = s.ids.next()
	car.CreatedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cars = append([]models.Car{car}, s.cars...)
	return car
}

// Update merges the patch into the matching listing. An absent id is a
// silent no-op; the second return value reports whether a match was found.
func (s *CarStore) Update(id string, patch models.CarPatch) (models.Car, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cars {
		if s.cars[i].ID == id {
			patch.Apply(&s.cars[i])
			return s.cars[i], true
		}
	}
	return models.Car{}, false
}

// Delete removes the matching listing. Absent ids are ignored, so repeated
// deletes are idempotent.
func (s *CarStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cars {
		if s.cars[i].ID == id {
			s.cars = append(s.cars[:i], s.cars[i+1:]...)
			return
		}
	}
}
