package driver

import "errors"

var (
	ErrMissingRequiredFields      = errors.New("missing required fields")
	ErrInvalidName                = errors.New("invalid name")
	ErrInvalidPhone               = errors.New("invalid phone")
	ErrInvalidVehicleRegistration = errors.New("invalid vehicle registration")
	ErrInvalidVehicleType         = errors.New("invalid vehicle type")
	ErrInvalidLocation            = errors.New("invalid location")

	ErrDriverNotFound = errors.New("driver not found")
	ErrConflict       = errors.New("driver already exists")
)
