package entities

import (
	"time"

	"github.com/google/uuid"
)

type VehicleType string

const (
	VehicleBasic        VehicleType = "basic"
	VehicleAdvanced     VehicleType = "advanced"
	VehicleCriticalCare VehicleType = "critical_care"
)

func (v VehicleType) String() string {
	return string(v)
}

type Driver struct {
	ID                  uuid.UUID
	Name                string
	Phone               string
	VehicleRegistration string
	VehicleType         VehicleType
	IsAvailable         bool
	CurrentLocation     *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type DriverModify struct {
	ID                  *uuid.UUID
	Name                *string
	Phone               *string
	VehicleRegistration *string
	VehicleType         *VehicleType
	IsAvailable         *bool
	CurrentLocation     *string
}

type DriverFilter struct {
	AvailableOnly bool
}

type TelemetryType string

const (
	TelemetryLocationChanged     TelemetryType = "location_changed"
	TelemetryAvailabilityChanged TelemetryType = "availability_changed"
	TelemetryShiftEnded          TelemetryType = "shift_ended"
)

func (t TelemetryType) String() string {
	return string(t)
}

// DriverLocation местоположение водителя. Координаты задаются только парой.
type DriverLocation struct {
	Location  string
	Latitude  *float64
	Longitude *float64
}

// DriverTelemetry событие от бортового устройства или приложения водителя.
type DriverTelemetry struct {
	DriverID  uuid.UUID
	Type      TelemetryType
	Location  *string
	Latitude  *float64
	Longitude *float64
	Available *bool
}
