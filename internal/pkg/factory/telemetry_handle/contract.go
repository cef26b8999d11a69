//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=telemetry_handle_test
package telemetry_handle

import (
	"context"

	"dispatch/internal/entities"

	"github.com/google/uuid"
)

type MatchingService interface {
	UpdateDriverLocation(ctx context.Context, driverID uuid.UUID, location entities.DriverLocation) (int64, error)
	ToggleAvailability(ctx context.Context, driverID uuid.UUID, available bool) (*entities.Driver, error)
}
