// internal/services/car_service.go
package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/stefanninkovic/carunity/internal/models"
	"github.com/stefanninkovic/carunity/internal/store"
	"github.com/stefanninkovic/carunity/internal/utils"
)

type CarService struct {
	cars *store.CarStore
}

type CreateOfferRequest struct {
	Make         string              `json:"make" validate:"required"`
	Model        string              `json:"model" validate:"required"`
	Year         int                 `json:"year" validate:"required,min=1900,max=2100"`
	Price        float64             `json:"price" validate:"required,min=0"`
	Mileage      int                 `json:"mileage" validate:"min=0"`
	Transmission models.Transmission `json:"transmission" validate:"required,oneof=automatic manual"`
	FuelType     models.FuelType     `json:"fuel_type" validate:"required,oneof=petrol diesel electric hybrid"`
	Condition    models.Condition    `json:"condition" validate:"required,oneof=new used certified"`
	ImageURL     string              `json:"image_url" validate:"required,url"`
	Images       []string            `json:"images,omitempty" validate:"omitempty,dive,url"`
	Description  string              `json:"description" validate:"required"`
	Location     string              `json:"location" validate:"required"`
	Featured     bool                `json:"featured"`
	Listed       *bool               `json:"listed,omitempty"`
	BodyType     *string             `json:"body_type,omitempty"`
	Color        *string             `json:"color,omitempty"`
	Doors        *int                `json:"doors,omitempty" validate:"omitempty,min=1,max=7"`
	Seats        *int                `json:"seats,omitempty" validate:"omitempty,min=1,max=9"`
	EngineSize   *float64            `json:"engine_size,omitempty" validate:"omitempty,min=0"`
	Horsepower   *int                `json:"horsepower,omitempty" validate:"omitempty,min=0"`
	DriveType    *models.DriveType   `json:"drive_type,omitempty" validate:"omitempty,oneof=fwd rwd awd 4wd"`
	Owners       *int                `json:"owners,omitempty" validate:"omitempty,min=0"`
	VIN          *string             `json:"vin,omitempty" validate:"omitempty,vin"`
	Features     []string            `json:"features,omitempty"`
}

// SearchParams is the full predicate set of the offers browse view.
// Nil/empty dimensions match everything; active ones combine with AND.
type SearchParams struct {
	Query         string
	PriceMin      *float64
	PriceMax      *float64
	FuelType      *models.FuelType
	Transmission  *models.Transmission
	Condition     *models.Condition
	YearMin       *int
	YearMax       *int
	MileageMax    *int
	BodyType      *string
	Color         *string
	DriveType     *models.DriveType
	Make          *string
	Model         *string
	Location      *string
	Doors         *int
	Seats         *int
	EngineSizeMin *float64
	EngineSizeMax *float64
	HorsepowerMin *int
	HorsepowerMax *int
	OwnersMax     *int
}

func NewCarService(cars *store.CarStore) *CarService {
	return &CarService{cars: cars}
}

// Create publishes a new offer for the seller. Visibility defaults to
// listed unless the request says otherwise.
func (s *CarService) Create(seller models.User, req *CreateOfferRequest) (models.Car, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return models.Car{}, fmt.Errorf("validation failed: %w", err)
	}

	listed := true
	if req.Listed != nil {
		listed = *req.Listed
	}

	car := models.Car{
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		Price:        req.Price,
		Mileage:      req.Mileage,
		Transmission: req.Transmission,
		FuelType:     req.FuelType,
		Condition:    req.Condition,
		ImageURL:     req.ImageURL,
		Images:       req.Images,
		Description:  req.Description,
		Location:     req.Location,
		SellerID:     seller.ID,
		SellerName:   seller.Name,
		Featured:     req.Featured,
		Listed:       listed,
		BodyType:     req.BodyType,
		Color:        req.Color,
		Doors:        req.Doors,
		Seats:        req.Seats,
		EngineSize:   req.EngineSize,
		Horsepower:   req.Horsepower,
		DriveType:    req.DriveType,
		Owners:       req.Owners,
		VIN:          req.VIN,
		Features:     req.Features,
	}

	return s.cars.Add(car), nil
}

// Get returns an offer for the given viewer. Unlisted offers exist only
// for their owner; everyone else gets a not-found.
func (s *CarService) Get(id, viewerID string) (models.Car, error) {
	car, ok := s.cars.Get(id)
	if !ok {
		return models.Car{}, errors.New("offer not found")
	}
	if !car.Listed && car.SellerID != viewerID {
		return models.Car{}, errors.New("offer not found")
	}
	return car, nil
}

func (s *CarService) Update(id, sellerID string, patch models.CarPatch) (models.Car, error) {
	car, ok := s.cars.Get(id)
	if !ok {
		return models.Car{}, errors.New("offer not found")
	}
	if car.SellerID != sellerID {
		return models.Car{}, errors.New("unauthorized to update this offer")
	}

	updated, _ := s.cars.Update(id, patch)
	return updated, nil
}

// Delete removes the seller's offer. Deleting an id that no longer
// exists is a no-op, so repeated deletes succeed.
func (s *CarService) Delete(id, sellerID string) error {
	car, ok := s.cars.Get(id)
	if !ok {
		return nil
	}
	if car.SellerID != sellerID {
		return errors.New("unauthorized to delete this offer")
	}

	s.cars.Delete(id)
	return nil
}

// Search runs the public browse filter: a full scan over listed offers
// applying every active predicate.
func (s *CarService) Search(params SearchParams) []models.Car {
	result := make([]models.Car, 0)
	for _, car := range s.cars.List() {
		if !car.Listed {
			continue
		}
		if matchesSearch(car, params) {
			result = append(result, car)
		}
	}
	return result
}

// BySeller is the owner's management view: all of the seller's offers,
// unlisted ones included.
func (s *CarService) BySeller(sellerID string) []models.Car {
	result := make([]models.Car, 0)
	for _, car := range s.cars.List() {
		if car.SellerID == sellerID {
			result = append(result, car)
		}
	}
	return result
}

// ListedBySeller is the public profile view: only the seller's listed
// offers.
func (s *CarService) ListedBySeller(sellerID string) []models.Car {
	result := make([]models.Car, 0)
	for _, car := range s.cars.List() {
		if car.SellerID == sellerID && car.Listed {
			result = append(result, car)
		}
	}
	return result
}

// Featured returns the listed offers flagged for the home page.
func (s *CarService) Featured() []models.Car {
	result := make([]models.Car, 0)
	for _, car := range s.cars.List() {
		if car.Listed && car.Featured {
			result = append(result, car)
		}
	}
	return result
}

func matchesSearch(car models.Car, p SearchParams) bool {
	if p.Query != "" && !matchesQuery(car, p.Query) {
		return false
	}
	if p.PriceMin != nil && car.Price < *p.PriceMin {
		return false
	}
	if p.PriceMax != nil && car.Price > *p.PriceMax {
		return false
	}
	if p.FuelType != nil && car.FuelType != *p.FuelType {
		return false
	}
	if p.Transmission != nil && car.Transmission != *p.Transmission {
		return false
	}
	if p.Condition != nil && car.Condition != *p.Condition {
		return false
	}
	if p.YearMin != nil && car.Year < *p.YearMin {
		return false
	}
	if p.YearMax != nil && car.Year > *p.YearMax {
		return false
	}
	if p.MileageMax != nil && car.Mileage > *p.MileageMax {
		return false
	}
	if p.BodyType != nil && (car.BodyType == nil || *car.BodyType != *p.BodyType) {
		return false
	}
	if p.Color != nil && (car.Color == nil || *car.Color != *p.Color) {
		return false
	}
	if p.DriveType != nil && (car.DriveType == nil || *car.DriveType != *p.DriveType) {
		return false
	}
	if p.Make != nil && car.Make != *p.Make {
		return false
	}
	if p.Model != nil && car.Model != *p.Model {
		return false
	}
	if p.Location != nil && car.Location != *p.Location {
		return false
	}
	if p.Doors != nil && (car.Doors == nil || *car.Doors != *p.Doors) {
		return false
	}
	if p.Seats != nil && (car.Seats == nil || *car.Seats != *p.Seats) {
		return false
	}
	if p.EngineSizeMin != nil && (car.EngineSize == nil || *car.EngineSize < *p.EngineSizeMin) {
		return false
	}
	if p.EngineSizeMax != nil && (car.EngineSize == nil || *car.EngineSize > *p.EngineSizeMax) {
		return false
	}
	if p.HorsepowerMin != nil && (car.Horsepower == nil || *car.Horsepower < *p.HorsepowerMin) {
		return false
	}
	if p.HorsepowerMax != nil && (car.Horsepower == nil || *car.Horsepower > *p.HorsepowerMax) {
		return false
	}
	if p.OwnersMax != nil && (car.Owners == nil || *car.Owners > *p.OwnersMax) {
		return false
	}
	return true
}

// matchesQuery is the global text search across every listing field the
// offers view exposes, optional and enum fields included.
func matchesQuery(car models.Car, query string) bool {
	q := strings.ToLower(query)

	contains := func(s string) bool {
		return strings.Contains(strings.ToLower(s), q)
	}

	if contains(car.Make) || contains(car.Model) || contains(car.Location) ||
		contains(car.Description) || contains(car.SellerName) ||
		contains(strconv.Itoa(car.Year)) ||
		contains(strconv.FormatFloat(car.Price, 'f', -1, 64)) ||
		contains(strconv.Itoa(car.Mileage)) {
		return true
	}

	if car.BodyType != nil && contains(*car.BodyType) {
		return true
	}
	if car.Color != nil && contains(*car.Color) {
		return true
	}
	if car.VIN != nil && contains(*car.VIN) {
		return true
	}
	if car.EngineSize != nil && contains(strconv.FormatFloat(*car.EngineSize, 'f', -1, 64)) {
		return true
	}
	if car.Horsepower != nil && contains(strconv.Itoa(*car.Horsepower)) {
		return true
	}
	if car.Doors != nil && contains(strconv.Itoa(*car.Doors)) {
		return true
	}
	if car.Seats != nil && contains(strconv.Itoa(*car.Seats)) {
		return true
	}
	if car.Owners != nil && contains(strconv.Itoa(*car.Owners)) {
		return true
	}

	for _, feature := range car.Features {
		if contains(feature) {
			return true
		}
	}

	if contains(string(car.FuelType)) || contains(string(car.Transmission)) || contains(string(car.Condition)) {
		return true
	}
	if car.DriveType != nil && contains(string(*car.DriveType)) {
		return true
	}

	return false
}
