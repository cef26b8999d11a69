package telemetry_handle

import (
	"context"
	"fmt"
	"strings"

	"dispatch/internal/entities"
	"dispatch/internal/service/telemetry"
)

type TelemetryHandlerFactory struct {
	matchingService MatchingService
}

func NewTelemetryHandlerFactory(matchingService MatchingService) *TelemetryHandlerFactory {
	return &TelemetryHandlerFactory{
		matchingService: matchingService,
	}
}

func (f *TelemetryHandlerFactory) GetHandler(telemetryType entities.TelemetryType) (telemetry.ExecuteFn, error) {
	switch telemetryType {
	case entities.TelemetryLocationChanged:
		return f.locationChangedHandler, nil
	case entities.TelemetryAvailabilityChanged:
		return f.availabilityChangedHandler, nil
	case entities.TelemetryShiftEnded:
		return f.shiftEndedHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", telemetry.ErrUndefinedType, telemetryType)
	}
}

func (f *TelemetryHandlerFactory) locationChangedHandler(ctx context.Context, event entities.DriverTelemetry) error {
	if event.Location == nil || strings.TrimSpace(*event.Location) == "" {
		return fmt.Errorf("location_changed without location: %w", telemetry.ErrInvalidEvent)
	}

	_, err := f.matchingService.UpdateDriverLocation(ctx, event.DriverID, entities.DriverLocation{
		Location:  *event.Location,
		Latitude:  event.Latitude,
		Longitude: event.Longitude,
	})
	if err != nil {
		return fmt.Errorf("update location of driver %s: %w", event.DriverID, err)
	}
	return nil
}

func (f *TelemetryHandlerFactory) availabilityChangedHandler(ctx context.Context, event entities.DriverTelemetry) error {
	if event.Available == nil {
		return fmt.Errorf("availability_changed without flag: %w", telemetry.ErrInvalidEvent)
	}

	_, err := f.matchingService.ToggleAvailability(ctx, event.DriverID, *event.Available)
	if err != nil {
		return fmt.Errorf("toggle availability of driver %s: %w", event.DriverID, err)
	}
	return nil
}

func (f *TelemetryHandlerFactory) shiftEndedHandler(ctx context.Context, event entities.DriverTelemetry) error {
	_, err := f.matchingService.ToggleAvailability(ctx, event.DriverID, false)
	if err != nil {
		return fmt.Errorf("end shift of driver %s: %w", event.DriverID, err)
	}
	return nil
}
