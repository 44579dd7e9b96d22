// internal/services/lookup_service.go
package services

import (
	"errors"

	"github.com/stefanninkovic/carunity/internal/models"
)

// LookupService answers vehicle-specification queries against the mock
// vehicle database used to prefill the offer form.
type LookupService struct{}

func NewLookupService() *LookupService {
	return &LookupService{}
}

var ErrVehicleNotFound = errors.New("vehicle not found")

// Vehicle resolves a spec by make/model/body type/year.
func (s *LookupService) Vehicle(make, model, bodyType string, year int) (models.VehicleSpec, error) {
	spec, ok := models.LookupVehicle(models.VehicleKey{
		Make:     make,
		Model:    model,
		BodyType: bodyType,
		Year:     year,
	})
	if !ok {
		return models.VehicleSpec{}, ErrVehicleNotFound
	}
	return spec, nil
}

// TypeApproval resolves a spec by Swiss type approval number.
func (s *LookupService) TypeApproval(number string) (models.VehicleSpec, error) {
	spec, ok := models.LookupTypeApproval(number)
	if !ok {
		return models.VehicleSpec{}, ErrVehicleNotFound
	}
	return spec, nil
}

// Stammnummer resolves a spec by Swiss vehicle registry number.
func (s *LookupService) Stammnummer(number string) (models.VehicleSpec, error) {
	spec, ok := models.LookupStammnummer(number)
	if !ok {
		return models.VehicleSpec{}, ErrVehicleNotFound
	}
	return spec, nil
}
