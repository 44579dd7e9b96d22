// internal/models/common.go
package models

// Enums
type Transmission string

const (
	TransmissionAutomatic Transmission = "automatic"
	TransmissionManual    Transmission = "manual"
)

func (t Transmission) Valid() bool {
	return t == TransmissionAutomatic || t == TransmissionManual
}

type FuelType string

const (
	FuelTypePetrol   FuelType = "petrol"
	FuelTypeDiesel   FuelType = "diesel"
	FuelTypeElectric FuelType = "electric"
	FuelTypeHybrid   FuelType = "hybrid"
)

func (f FuelType) Valid() bool {
	switch f {
	case FuelTypePetrol, FuelTypeDiesel, FuelTypeElectric, FuelTypeHybrid:
		return true
	}
	return false
}

type Condition string

const (
	ConditionNew       Condition = "new"
	ConditionUsed      Condition = "used"
	ConditionCertified Condition = "certified"
)

func (c Condition) Valid() bool {
	return c == ConditionNew || c == ConditionUsed || c == ConditionCertified
}

type DriveType string

const (
	DriveTypeFWD    DriveType = "fwd"
	DriveTypeRWD    DriveType = "rwd"
	DriveTypeAWD    DriveType = "awd"
	DriveTypeFourWD DriveType = "4wd"
)

func (d DriveType) Valid() bool {
	switch d {
	case DriveTypeFWD, DriveTypeRWD, DriveTypeAWD, DriveTypeFourWD:
		return true
	}
	return false
}

type ReportType string

const (
	ReportTypeAccount ReportType = "account"
	ReportTypeOffer   ReportType = "offer"
	ReportTypeWheel   ReportType = "wheel"
)

func (r ReportType) Valid() bool {
	return r == ReportTypeAccount || r == ReportTypeOffer || r == ReportTypeWheel
}

type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusReviewed ReportStatus = "reviewed"
	ReportStatusResolved ReportStatus = "resolved"
)
