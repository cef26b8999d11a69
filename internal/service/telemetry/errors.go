package telemetry

import "errors"

var (
	ErrInvalidEvent  = errors.New("invalid driver telemetry event")
	ErrUndefinedType = errors.New("undefined telemetry type")
)
