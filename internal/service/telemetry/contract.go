//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=telemetry_test
package telemetry

import (
	"context"

	"dispatch/internal/entities"

	"github.com/google/uuid"
)

type MatchingService interface {
	UpdateDriverLocation(ctx context.Context, driverID uuid.UUID, location entities.DriverLocation) (int64, error)
	ToggleAvailability(ctx context.Context, driverID uuid.UUID, available bool) (*entities.Driver, error)
}

type (
	ExecuteFn      func(ctx context.Context, event entities.DriverTelemetry) error
	HandlerFactory interface {
		GetHandler(telemetryType entities.TelemetryType) (ExecuteFn, error)
	}
)
