// internal/services/lookup_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupVehicleNormalizesKey(t *testing.T) {
	svc := NewLookupService()

	spec, err := svc.Vehicle("Porsche", "911", "Coupe", 2024)
	require.NoError(t, err)
	assert.Equal(t, 640, spec.Horsepower)

	// case and surrounding whitespace do not matter
	upper, err := svc.Vehicle(" PORSCHE ", "911", "COUPE", 2024)
	require.NoError(t, err)
	assert.Equal(t, spec, upper)
}

func TestLookupVehicleNotFound(t *testing.T) {
	svc := NewLookupService()

	_, err := svc.Vehicle("Porsche", "911", "Coupe", 1999)
	assert.ErrorIs(t, err, ErrVehicleNotFound)

	_, err = svc.Vehicle("Lada", "Niva", "SUV", 2024)
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestLookupTypeApproval(t *testing.T) {
	svc := NewLookupService()

	spec, err := svc.TypeApproval("CH-TA-2024-911")
	require.NoError(t, err)
	assert.Equal(t, "Porsche", spec.Make)
	assert.Equal(t, "911 Turbo", spec.Model)

	_, err = svc.TypeApproval("CH-TA-0000-NONE")
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestLookupStammnummer(t *testing.T) {
	svc := NewLookupService()

	spec, err := svc.Stammnummer("5678-XYZ")
	require.NoError(t, err)
	assert.Equal(t, "BMW", spec.Make)

	// registry numbers are trimmed before lookup
	spec, err = svc.Stammnummer(" 1234-ABC ")
	require.NoError(t, err)
	assert.Equal(t, "Porsche", spec.Make)

	_, err = svc.Stammnummer("0000-AAA")
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}
