package driver

import (
	"time"

	"github.com/google/uuid"
)

type DriverDB struct {
	ID                  uuid.UUID
	Name                string
	Phone               string
	VehicleRegistration string
	VehicleType         string
	IsAvailable         bool
	CurrentLocation     *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type DriverModifyDB struct {
	ID                  *uuid.UUID
	Name                *string
	Phone               *string
	VehicleRegistration *string
	VehicleType         *string
	IsAvailable         *bool
	CurrentLocation     *string
}
