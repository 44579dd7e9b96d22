// internal/store/seed.go
package store

import (
	"time"

	"github.com/stefanninkovic/carunity/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func floatPtr(f float64) *float64 { return &f }
func drivePtr(d models.DriveType) *models.DriveType { return &d }

// SeedUsers returns the mock identity table. The demo account is the one
// the login form advertises.
func SeedUsers() []SeedUser {
	return []SeedUser{
		{
			User: models.User{
				ID:       "user1",
				Name:     "Demo User",
				Email:    "demo@carunity.com",
				Phone:    "+41 79 123 45 67",
				Location: "Zurich, Switzerland",
			},
			Password: "demo123",
		},
		{
			User: models.User{
				ID:       "seller1",
				Name:     "Marco Bianchi",
				Email:    "marco@carunity.com",
				Phone:    "+41 78 234 56 78",
				Location: "Lugano, Switzerland",
			},
			Password: "marco123",
		},
		{
			User: models.User{
				ID:       "seller2",
				Name:     "Anna Keller",
				Email:    "anna@carunity.com",
				Phone:    "+41 76 345 67 89",
				Location: "Bern, Switzerland",
			},
			Password: "anna123",
		},
		{
			User: models.User{
				ID:       "user2",
				Name:     "Luca Meier",
				Email:    "luca@carunity.com",
				Phone:    "+41 79 456 78 90",
				Location: "Basel, Switzerland",
			},
			Password: "luca123",
		},
		{
			User: models.User{
				ID:       "user3",
				Name:     "Sophie Brunner",
				Email:    "sophie@carunity.com",
				Phone:    "+41 78 567 89 01",
				Location: "Geneva, Switzerland",
			},
			Password: "sophie123",
		},
	}
}

// SeedFollowers is the fixed mock set of accounts following the current
// identity.
func SeedFollowers() []string {
	return []string{"seller2", "user2", "user3"}
}

// SeedCars returns the mock listings, newest first.
func SeedCars() []models.Car {
	now := time.Now()
	return []models.Car{
		{
			ID:           "car1",
			Make:         "Porsche",
			Model:        "911",
			Year:         2024,
			Price:        189000,
			Mileage:      1200,
			Transmission: models.TransmissionAutomatic,
			FuelType:     models.FuelTypePetrol,
			Condition:    models.ConditionNew,
			ImageURL:     "https://images.carunity.com/cars/porsche-911.jpg",
			Description:  "Factory-new 911 Carrera 4S with Sport Chrono package and full warranty.",
			Location:     "Zurich, Switzerland",
			SellerID:     "seller1",
			SellerName:   "Marco Bianchi",
			Featured:     true,
			Listed:       true,
			CreatedAt:    now.Add(-12 * time.Hour),
			BodyType:     strPtr("Coupe"),
			Color:        strPtr("Guards Red"),
			Doors:        intPtr(2),
			Seats:        intPtr(4),
			EngineSize:   floatPtr(3.0),
			Horsepower:   intPtr(450),
			DriveType:    drivePtr(models.DriveTypeAWD),
			Owners:       intPtr(1),
			VIN:          strPtr("WP0ZZZ99ZRS100001"),
			Features:     []string{"Sport Chrono Package", "Adaptive Cruise Control", "Premium Sound System"},
		},
		{
			ID:           "car2",
			Make:         "BMW",
			Model:        "5 Series",
			Year:         2023,
			Price:        62000,
			Mileage:      18500,
			Transmission: models.TransmissionAutomatic,
			FuelType:     models.FuelTypeDiesel,
			Condition:    models.ConditionUsed,
			ImageURL:     "https://images.carunity.com/cars/bmw-5series.jpg",
			Description:  "Well-kept 530d touring, full service history, winter tires included.",
			Location:     "Bern, Switzerland",
			SellerID:     "seller2",
			SellerName:   "Anna Keller",
			Listed:       true,
			CreatedAt:    now.Add(-2 * 24 * time.Hour),
			BodyType:     strPtr("Sedan"),
			Color:        strPtr("Mineral White"),
			Doors:        intPtr(4),
			Seats:        intPtr(5),
			EngineSize:   floatPtr(3.0),
			Horsepower:   intPtr(265),
			DriveType:    drivePtr(models.DriveTypeRWD),
			Owners:       intPtr(2),
			VIN:          strPtr("WBA5A31070D000002"),
			Features:     []string{"Leather Seats", "Parking Sensors", "Apple CarPlay"},
		},
		{
			ID:           "car3",
			Make:         "Tesla",
			Model:        "Model S",
			Year:         2024,
			Price:        98000,
			Mileage:      5000,
			Transmission: models.TransmissionAutomatic,
			FuelType:     models.FuelTypeElectric,
			Condition:    models.ConditionCertified,
			ImageURL:     "https://images.carunity.com/cars/tesla-models.jpg",
			Description:  "Certified pre-owned Model S Long Range, free supercharging until 2026.",
			Location:     "Geneva, Switzerland",
			SellerID:     "seller1",
			SellerName:   "Marco Bianchi",
			Featured:     true,
			Listed:       true,
			CreatedAt:    now.Add(-4 * 24 * time.Hour),
			BodyType:     strPtr("Sedan"),
			Color:        strPtr("Midnight Silver"),
			Doors:        intPtr(4),
			Seats:        intPtr(5),
			EngineSize:   floatPtr(0),
			Horsepower:   intPtr(670),
			DriveType:    drivePtr(models.DriveTypeAWD),
			Owners:       intPtr(1),
			VIN:          strPtr("5YJSA1E60RF000003"),
			Features:     []string{"Autopilot", "Glass Roof", "Premium Audio"},
		},
		{
			ID:           "car4",
			Make:         "Volkswagen",
			Model:        "Golf",
			Year:         2020,
			Price:        21500,
			Mileage:      64000,
			Transmission: models.TransmissionManual,
			FuelType:     models.FuelTypePetrol,
			Condition:    models.ConditionUsed,
			ImageURL:     "https://images.carunity.com/cars/vw-golf.jpg",
			Description:  "Reliable Golf 1.5 TSI, single owner, recently serviced.",
			Location:     "Basel, Switzerland",
			SellerID:     "seller2",
			SellerName:   "Anna Keller",
			Listed:       true,
			CreatedAt:    now.Add(-6 * 24 * time.Hour),
			BodyType:     strPtr("Hatchback"),
			Color:        strPtr("Pure White"),
			Doors:        intPtr(5),
			Seats:        intPtr(5),
			EngineSize:   floatPtr(1.5),
			Horsepower:   intPtr(150),
			DriveType:    drivePtr(models.DriveTypeFWD),
			Owners:       intPtr(1),
			Features:     []string{"Lane Assist", "Heated Seats"},
		},
		{
			ID:           "car5",
			Make:         "Toyota",
			Model:        "RAV4",
			Year:         2022,
			Price:        38900,
			Mileage:      31000,
			Transmission: models.TransmissionAutomatic,
			FuelType:     models.FuelTypeHybrid,
			Condition:    models.ConditionUsed,
			ImageURL:     "https://images.carunity.com/cars/toyota-rav4.jpg",
			Description:  "RAV4 Hybrid AWD, economical family SUV with towbar.",
			Location:     "Lugano, Switzerland",
			SellerID:     "seller1",
			SellerName:   "Marco Bianchi",
			Listed:       false,
			CreatedAt:    now.Add(-8 * 24 * time.Hour),
			BodyType:     strPtr("SUV"),
			Color:        strPtr("Urban Khaki"),
			Doors:        intPtr(5),
			Seats:        intPtr(5),
			EngineSize:   floatPtr(2.5),
			Horsepower:   intPtr(222),
			DriveType:    drivePtr(models.DriveTypeAWD),
			Owners:       intPtr(1),
		},
	}
}

// SeedWheels returns the mock wheel videos, newest first.
func SeedWheels() []models.Wheel {
	now := time.Now()
	return []models.Wheel{
		{
			ID:           "wheel1",
			CarID:        "car1",
			VideoURL:     "https://videos.carunity.com/wheels/porsche-launch.mp4",
			ThumbnailURL: "https://images.carunity.com/wheels/porsche-launch.jpg",
			Title:        "911 launch control",
			Description:  "0-100 in 3.3 seconds. Sound on.",
			Likes:        241,
			Views:        5120,
			UserID:       "seller1",
			UserName:     "Marco Bianchi",
			Listed:       true,
			CreatedAt:    now.Add(-10 * time.Hour),
		},
		{
			ID:           "wheel2",
			CarID:        "car2",
			VideoURL:     "https://videos.carunity.com/wheels/bmw-walkaround.mp4",
			ThumbnailURL: "https://images.carunity.com/wheels/bmw-walkaround.jpg",
			Title:        "530d walkaround",
			Description:  "Quick tour of the interior and trunk space.",
			Likes:        87,
			Views:        1930,
			UserID:       "seller2",
			UserName:     "Anna Keller",
			Listed:       true,
			CreatedAt:    now.Add(-3 * 24 * time.Hour),
		},
		{
			ID:           "wheel3",
			VideoURL:     "https://videos.carunity.com/wheels/alpine-drive.mp4",
			ThumbnailURL: "https://images.carunity.com/wheels/alpine-drive.jpg",
			Title:        "Sunday drive over the Gotthard pass",
			Description:  "No car attached, just the view.",
			Likes:        412,
			Views:        8844,
			UserID:       "user2",
			UserName:     "Luca Meier",
			Listed:       true,
			CreatedAt:    now.Add(-5 * 24 * time.Hour),
		},
		{
			ID:           "wheel4",
			CarID:        "car5",
			VideoURL:     "https://videos.carunity.com/wheels/rav4-offroad.mp4",
			ThumbnailURL: "https://images.carunity.com/wheels/rav4-offroad.jpg",
			Title:        "RAV4 on gravel",
			Description:  "Testing the AWD on a forest road.",
			Likes:        35,
			Views:        640,
			UserID:       "seller1",
			UserName:     "Marco Bianchi",
			Listed:       false,
			CreatedAt:    now.Add(-7 * 24 * time.Hour),
		},
	}
}
