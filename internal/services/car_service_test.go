// internal/services/car_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stefanninkovic/carunity/internal/models"
	"github.com/stefanninkovic/carunity/internal/store"
)

func newSeededCarService() *CarService {
	return NewCarService(store.NewCarStore(store.SeedCars()))
}

func fuelPtr(f models.FuelType) *models.FuelType { return &f }
func str(s string) *string                       { return &s }
func num(f float64) *float64                     { return &f }
func integer(i int) *int                         { return &i }

func TestCarServiceSearchExcludesUnlisted(t *testing.T) {
	svc := newSeededCarService()

	results := svc.Search(SearchParams{})
	require.Len(t, results, 4)
	for _, car := range results {
		assert.True(t, car.Listed)
		assert.NotEqual(t, "car5", car.ID)
	}
}

func TestCarServiceSearchByFuelType(t *testing.T) {
	svc := newSeededCarService()

	results := svc.Search(SearchParams{FuelType: fuelPtr(models.FuelTypeElectric)})
	require.Len(t, results, 1)
	assert.Equal(t, "car3", results[0].ID)
}

func TestCarServiceSearchPriceRange(t *testing.T) {
	svc := newSeededCarService()

	results := svc.Search(SearchParams{PriceMin: num(20000), PriceMax: num(70000)})
	require.Len(t, results, 2)
	for _, car := range results {
		assert.GreaterOrEqual(t, car.Price, 20000.0)
		assert.LessOrEqual(t, car.Price, 70000.0)
	}
}

func TestCarServiceSearchCombinesPredicates(t *testing.T) {
	svc := newSeededCarService()

	results := svc.Search(SearchParams{
		YearMin:       integer(2023),
		HorsepowerMin: integer(400),
	})
	require.Len(t, results, 2)
	for _, car := range results {
		assert.GreaterOrEqual(t, car.Year, 2023)
		require.NotNil(t, car.Horsepower)
		assert.GreaterOrEqual(t, *car.Horsepower, 400)
	}
}

func TestCarServiceSearchOptionalFieldAbsentFailsPredicate(t *testing.T) {
	svc := NewCarService(store.NewCarStore([]models.Car{
		{ID: "bare", Make: "Fiat", Model: "Panda", Listed: true},
	}))

	// predicates on optional fields never match listings missing them
	assert.Empty(t, svc.Search(SearchParams{Doors: integer(5)}))
	assert.Empty(t, svc.Search(SearchParams{OwnersMax: integer(3)}))
	assert.Empty(t, svc.Search(SearchParams{EngineSizeMin: num(1.0)}))
}

func TestCarServiceSearchQueryText(t *testing.T) {
	svc := newSeededCarService()

	results := svc.Search(SearchParams{Query: "porsche"})
	require.Len(t, results, 1)
	assert.Equal(t, "car1", results[0].ID)

	// query reaches into features and enum fields too
	assert.NotEmpty(t, svc.Search(SearchParams{Query: "lane assist"}))
	assert.NotEmpty(t, svc.Search(SearchParams{Query: "diesel"}))

	assert.Empty(t, svc.Search(SearchParams{Query: "lamborghini"}))
}

func TestCarServiceGetUnlistedHiddenFromOthers(t *testing.T) {
	svc := newSeededCarService()

	// owner sees the unlisted offer
	car, err := svc.Get("car5", "seller1")
	require.NoError(t, err)
	assert.Equal(t, "car5", car.ID)

	// everyone else gets a not-found, not a forbidden
	_, err = svc.Get("car5", "user1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = svc.Get("car5", "")
	require.Error(t, err)
}

func TestCarServiceCreateDefaultsToListed(t *testing.T) {
	svc := newSeededCarService()
	seller := models.User{ID: "user1", Name: "Demo User"}

	car, err := svc.Create(seller, &CreateOfferRequest{
		Make:         "Audi",
		Model:        "A4",
		Year:         2021,
		Price:        32000,
		Mileage:      40000,
		Transmission: models.TransmissionAutomatic,
		FuelType:     models.FuelTypePetrol,
		Condition:    models.ConditionUsed,
		ImageURL:     "https://images.carunity.com/cars/audi-a4.jpg",
		Description:  "Tidy A4 Avant with full history.",
		Location:     "Zug, Switzerland",
	})
	require.NoError(t, err)
	assert.True(t, car.Listed)
	assert.Equal(t, "user1", car.SellerID)
	assert.Equal(t, "Demo User", car.SellerName)
	assert.NotEmpty(t, car.ID)
}

func TestCarServiceCreateRejectsBadVIN(t *testing.T) {
	svc := newSeededCarService()

	_, err := svc.Create(models.User{ID: "user1"}, &CreateOfferRequest{
		Make:         "Audi",
		Model:        "A4",
		Year:         2021,
		Price:        32000,
		Transmission: models.TransmissionAutomatic,
		FuelType:     models.FuelTypePetrol,
		Condition:    models.ConditionUsed,
		ImageURL:     "https://images.carunity.com/cars/audi-a4.jpg",
		Description:  "Tidy A4.",
		Location:     "Zug, Switzerland",
		VIN:          str("BADVIN"),
	})
	assert.Error(t, err)
}

func TestCarServiceUpdateOwnershipEnforced(t *testing.T) {
	svc := newSeededCarService()

	price := 180000.0
	updated, err := svc.Update("car1", "seller1", models.CarPatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 180000.0, updated.Price)

	_, err = svc.Update("car1", "user1", models.CarPatch{Price: &price})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}

func TestCarServiceDelete(t *testing.T) {
	svc := newSeededCarService()

	require.Error(t, svc.Delete("car1", "user1"))

	require.NoError(t, svc.Delete("car1", "seller1"))
	_, err := svc.Get("car1", "seller1")
	assert.Error(t, err)

	// deleting an id that is already gone still succeeds
	require.NoError(t, svc.Delete("car1", "seller1"))
	require.NoError(t, svc.Delete("car999", "seller1"))
}

func TestCarServiceSellerViews(t *testing.T) {
	svc := newSeededCarService()

	mine := svc.BySeller("seller1")
	require.Len(t, mine, 3)

	public := svc.ListedBySeller("seller1")
	require.Len(t, public, 2)
	for _, car := range public {
		assert.True(t, car.Listed)
	}
}

func TestCarServiceFeatured(t *testing.T) {
	svc := newSeededCarService()

	featured := svc.Featured()
	require.Len(t, featured, 2)
	for _, car := range featured {
		assert.True(t, car.Featured)
		assert.True(t, car.Listed)
	}
}
