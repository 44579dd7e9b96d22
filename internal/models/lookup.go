// internal/models/lookup.go
package models

import "strings"

// VehicleSpec is the technical record returned by the mock vehicle
// database lookups. Identity fields are empty for lookups that already
// know make/model/year (the composite-key lookup).
type VehicleSpec struct {
	Make         string       `json:"make,omitempty"`
	Model        string       `json:"model,omitempty"`
	BodyType     string       `json:"body_type,omitempty"`
	Year         int          `json:"year,omitempty"`
	Doors        int          `json:"doors"`
	Seats        int          `json:"seats"`
	EngineSize   float64      `json:"engine_size"`
	Horsepower   int          `json:"horsepower"`
	Transmission Transmission `json:"transmission"`
	FuelType     FuelType     `json:"fuel_type"`
	DriveType    DriveType    `json:"drive_type"`
	Features     []string     `json:"features,omitempty"`
}

// VehicleKey identifies a vehicle variant in the mock database.
type VehicleKey struct {
	Make     string
	Model    string
	BodyType string
	Year     int
}

func (k VehicleKey) normalized() VehicleKey {
	return VehicleKey{
		Make:     strings.ToLower(strings.TrimSpace(k.Make)),
		Model:    strings.ToLower(strings.TrimSpace(k.Model)),
		BodyType: strings.ToLower(strings.TrimSpace(k.BodyType)),
		Year:     k.Year,
	}
}

var vehicleSpecs = map[VehicleKey]VehicleSpec{
	{Make: "porsche", Model: "911", BodyType: "coupe", Year: 2024}: {
		Doors:        2,
		Seats:        4,
		EngineSize:   3.8,
		Horsepower:   640,
		Transmission: TransmissionAutomatic,
		FuelType:     FuelTypePetrol,
		DriveType:    DriveTypeAWD,
		Features:     []string{"Sport Chrono Package", "Adaptive Cruise Control", "Premium Sound System", "Carbon Ceramic Brakes"},
	},
	{Make: "bmw", Model: "5 series", BodyType: "sedan", Year: 2023}: {
		Doors:        4,
		Seats:        5,
		EngineSize:   3.0,
		Horsepower:   265,
		Transmission: TransmissionAutomatic,
		FuelType:     FuelTypeDiesel,
		DriveType:    DriveTypeRWD,
		Features:     []string{"Leather Seats", "Parking Sensors", "Lane Departure Warning", "Apple CarPlay"},
	},
	{Make: "tesla", Model: "model s", BodyType: "sedan", Year: 2024}: {
		Doors:        4,
		Seats:        5,
		EngineSize:   0,
		Horsepower:   670,
		Transmission: TransmissionAutomatic,
		FuelType:     FuelTypeElectric,
		DriveType:    DriveTypeAWD,
		Features:     []string{"Autopilot", "Premium Interior", "Glass Roof", "Premium Audio"},
	},
}

// Swiss type approval (Typengenehmigung) records.
var typeApprovalSpecs = map[string]VehicleSpec{
	"CH-TA-2024-911": {
		Make: "Porsche", Model: "911 Turbo", BodyType: "Coupe", Year: 2024,
		Doors: 2, Seats: 4, EngineSize: 3.8, Horsepower: 640,
		Transmission: TransmissionAutomatic, FuelType: FuelTypePetrol, DriveType: DriveTypeAWD,
	},
	"CH-TA-2023-BMW5": {
		Make: "BMW", Model: "5 Series", BodyType: "Sedan", Year: 2023,
		Doors: 4, Seats: 5, EngineSize: 3.0, Horsepower: 265,
		Transmission: TransmissionAutomatic, FuelType: FuelTypeDiesel, DriveType: DriveTypeRWD,
	},
}

// Swiss vehicle registry (Stammnummer) records.
var stammnummerSpecs = map[string]VehicleSpec{
	"1234-ABC": {
		Make: "Porsche", Model: "911 Turbo", BodyType: "Coupe", Year: 2024,
		Doors: 2, Seats: 4, EngineSize: 3.8, Horsepower: 640,
		Transmission: TransmissionAutomatic, FuelType: FuelTypePetrol, DriveType: DriveTypeAWD,
	},
	"5678-XYZ": {
		Make: "BMW", Model: "5 Series", BodyType: "Sedan", Year: 2023,
		Doors: 4, Seats: 5, EngineSize: 3.0, Horsepower: 265,
		Transmission: TransmissionAutomatic, FuelType: FuelTypeDiesel, DriveType: DriveTypeRWD,
	},
}

// LookupVehicle resolves a spec by composite key. The boolean result is
// the only not-found signal; there is no sentinel value.
func LookupVehicle(key VehicleKey) (VehicleSpec, bool) {
	spec, ok := vehicleSpecs[key.normalized()]
	return spec, ok
}

func LookupTypeApproval(number string) (VehicleSpec, bool) {
	spec, ok := typeApprovalSpecs[strings.TrimSpace(number)]
	return spec, ok
}

func LookupStammnummer(number string) (VehicleSpec, bool) {
	spec, ok := stammnummerSpecs[strings.TrimSpace(number)]
	return spec, ok
}
