package dispatch

import "errors"

var (
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrConflict          = errors.New("request state conflict")
	ErrRequestNotFound   = errors.New("transport request not found")
	ErrDriverUnavailable = errors.New("driver is not accepting requests")
)
