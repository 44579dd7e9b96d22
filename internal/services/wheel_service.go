// internal/services/wheel_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/stefanninkovic/carunity/internal/models"
	"github.com/stefanninkovic/carunity/internal/store"
	"github.com/stefanninkovic/carunity/internal/utils"
)

type WheelService struct {
	wheels *store.WheelStore
}

type CreateWheelRequest struct {
	CarID        string `json:"car_id,omitempty"`
	VideoURL     string `json:"video_url" validate:"required,url"`
	ThumbnailURL string `json:"thumbnail_url" validate:"required,url"`
	Title        string `json:"title" validate:"required,max=120"`
	Description  string `json:"description"`
	Listed       *bool  `json:"listed,omitempty"`
}

func NewWheelService(wheels *store.WheelStore) *WheelService {
	return &WheelService{wheels: wheels}
}

// Create publishes a new wheel for the user. Counters start at zero.
func (s *WheelService) Create(user models.User, req *CreateWheelRequest) (models.Wheel, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return models.Wheel{}, fmt.Errorf("validation failed: %w", err)
	}

	listed := true
	if req.Listed != nil {
		listed = *req.Listed
	}

	wheel := models.Wheel{
		CarID:        req.CarID,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Title:        req.Title,
		Description:  req.Description,
		UserID:       user.ID,
		UserName:     user.Name,
		Listed:       listed,
	}

	return s.wheels.Add(wheel), nil
}

func (s *WheelService) Get(id, viewerID string) (models.Wheel, error) {
	wheel, ok := s.wheels.Get(id)
	if !ok {
		return models.Wheel{}, errors.New("wheel not found")
	}
	if !wheel.Listed && wheel.UserID != viewerID {
		return models.Wheel{}, errors.New("wheel not found")
	}
	return wheel, nil
}

func (s *WheelService) Update(id, userID string, patch models.WheelPatch) (models.Wheel, error) {
	wheel, ok := s.wheels.Get(id)
	if !ok {
		return models.Wheel{}, errors.New("wheel not found")
	}
	if wheel.UserID != userID {
		return models.Wheel{}, errors.New("unauthorized to update this wheel")
	}

	updated, _ := s.wheels.Update(id, patch)
	return updated, nil
}

func (s *WheelService) Delete(id, userID string) error {
	wheel, ok := s.wheels.Get(id)
	if !ok {
		return nil
	}
	if wheel.UserID != userID {
		return errors.New("unauthorized to delete this wheel")
	}

	s.wheels.Delete(id)
	return nil
}

// Browse is the public wheels view: listed wheels only, optionally
// narrowed to one car's clips.
func (s *WheelService) Browse(carID string) []models.Wheel {
	result := make([]models.Wheel, 0)
	for _, wheel := range s.wheels.List() {
		if !wheel.Listed {
			continue
		}
		if carID != "" && wheel.CarID != carID {
			continue
		}
		result = append(result, wheel)
	}
	return result
}

// ByUser is the owner's management view, unlisted wheels included.
func (s *WheelService) ByUser(userID string) []models.Wheel {
	result := make([]models.Wheel, 0)
	for _, wheel := range s.wheels.List() {
		if wheel.UserID == userID {
			result = append(result, wheel)
		}
	}
	return result
}

// ListedByUser is the public profile view: only the user's listed wheels.
func (s *WheelService) ListedByUser(userID string) []models.Wheel {
	result := make([]models.Wheel, 0)
	for _, wheel := range s.wheels.List() {
		if wheel.UserID == userID && wheel.Listed {
			result = append(result, wheel)
		}
	}
	return result
}
