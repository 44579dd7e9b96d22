// internal/models/car.go
package models

import "time"

type Car struct {
	ID           string       `json:"id"`
	Make         string       `json:"make"`
	Model        string       `json:"model"`
	Year         int          `json:"year"`
	Price        float64      `json:"price"`
	Mileage      int          `json:"mileage"`
	Transmission Transmission `json:"transmission"`
	FuelType     FuelType     `json:"fuel_type"`
	Condition    Condition    `json:"condition"`
	ImageURL     string       `json:"image_url"`
	Images       []string     `json:"images,omitempty"`
	Description  string       `json:"description"`
	Location     string       `json:"location"`
	SellerID     string       `json:"seller_id"`
	SellerName   string       `json:"seller_name"`
	Featured     bool         `json:"featured"`
	Listed       bool         `json:"listed"`
	CreatedAt    time.Time    `json:"created_at"`

	// Optional technical details. Pointers distinguish absent from zero.
	BodyType   *string    `json:"body_type,omitempty"`
	Color      *string    `json:"color,omitempty"`
	Doors      *int       `json:"doors,omitempty"`
	Seats      *int       `json:"seats,omitempty"`
	EngineSize *float64   `json:"engine_size,omitempty"` // in liters
	Horsepower *int       `json:"horsepower,omitempty"`
	DriveType  *DriveType `json:"drive_type,omitempty"`
	Owners     *int       `json:"owners,omitempty"`
	VIN        *string    `json:"vin,omitempty"`
	Features   []string   `json:"features,omitempty"`
}

// CarPatch carries a partial update. Nil fields are left untouched;
// the car's ID, seller and creation time are never patched. Present
// fields obey the same domain rules as creation.
type CarPatch struct {
	Make         *string       `json:"make,omitempty" validate:"omitempty,min=1"`
	Model        *string       `json:"model,omitempty" validate:"omitempty,min=1"`
	Year         *int          `json:"year,omitempty" validate:"omitempty,min=1900,max=2100"`
	Price        *float64      `json:"price,omitempty" validate:"omitempty,min=0"`
	Mileage      *int          `json:"mileage,omitempty" validate:"omitempty,min=0"`
	Transmission *Transmission `json:"transmission,omitempty" validate:"omitempty,oneof=automatic manual"`
	FuelType     *FuelType     `json:"fuel_type,omitempty" validate:"omitempty,oneof=petrol diesel electric hybrid"`
	Condition    *Condition    `json:"condition,omitempty" validate:"omitempty,oneof=new used certified"`
	ImageURL     *string       `json:"image_url,omitempty" validate:"omitempty,url"`
	Images       []string      `json:"images,omitempty" validate:"omitempty,dive,url"`
	Description  *string       `json:"description,omitempty"`
	Location     *string       `json:"location,omitempty"`
	Featured     *bool         `json:"featured,omitempty"`
	Listed       *bool         `json:"listed,omitempty"`
	BodyType     *string       `json:"body_type,omitempty"`
	Color        *string       `json:"color,omitempty"`
	Doors        *int          `json:"doors,omitempty" validate:"omitempty,min=1,max=7"`
	Seats        *int          `json:"seats,omitempty" validate:"omitempty,min=1,max=9"`
	EngineSize   *float64      `json:"engine_size,omitempty" validate:"omitempty,min=0"`
	Horsepower   *int          `json:"horsepower,omitempty" validate:"omitempty,min=0"`
	DriveType    *DriveType    `json:"drive_type,omitempty" validate:"omitempty,oneof=fwd rwd awd 4wd"`
	Owners       *int          `json:"owners,omitempty" validate:"omitempty,min=0"`
	VIN          *string       `json:"vin,omitempty" validate:"omitempty,vin"`
	Features     []string      `json:"features,omitempty"`
}

// Apply merges the patch into the car, field by field.
func (p *CarPatch) Apply(car *Car) {
	if p.Make != nil {
		car.Make = *p.Make
	}
	if p.Model != nil {
		car.Model = *p.Model
	}
	if p.Year != nil {
		car.Year = *p.Year
	}
	if p.Price != nil {
		car.Price = *p.Price
	}
	if p.Mileage != nil {
		car.Mileage = *p.Mileage
	}
	if p.Transmission != nil {
		car.Transmission = *p.Transmission
	}
	if p.FuelType != nil {
		car.FuelType = *p.FuelType
	}
	if p.Condition != nil {
		car.Condition = *p.Condition
	}
	if p.ImageURL != nil {
		car.ImageURL = *p.ImageURL
	}
	if p.Images != nil {
		car.Images = p.Images
	}
	if p.Description != nil {
		car.Description = *p.Description
	}
	if p.Location != nil {
		car.Location = *p.Location
	}
	if p.Featured != nil {
		car.Featured = *p.Featured
	}
	if p.Listed != nil {
		car.Listed = *p.Listed
	}
	if p.BodyType != nil {
		car.BodyType = p.BodyType
	}
	if p.Color != nil {
		car.Color = p.Color
	}
	if p.Doors != nil {
		car.Doors = p.Doors
	}
	if p.Seats != nil {
		car.Seats = p.Seats
	}
	if p.EngineSize != nil {
		car.EngineSize = p.EngineSize
	}
	if p.Horsepower != nil {
		car.Horsepower = p.Horsepower
	}
	if p.DriveType != nil {
		car.DriveType = p.DriveType
	}
	if p.Owners != nil {
		car.Owners = p.Owners
	}
	if p.VIN != nil {
		car.VIN = p.VIN
	}
	if p.Features != nil {
		car.Features = p.Features
	}
}
