//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=matching_test
package matching

import (
	"context"

	"dispatch/internal/entities"

	"github.com/google/uuid"
)

type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.TransportRequest, error)
	List(ctx context.Context, filter entities.TransportRequestFilter) ([]entities.TransportRequest, error)
	UpdateLocation(ctx context.Context, update entities.LocationUpdate) (*entities.TransportRequest, error)
	UpdateLocationByDriver(ctx context.Context, driverID uuid.UUID, location entities.DriverLocation) (int64, error)
	PendingBacklog(ctx context.Context) (*entities.PendingBacklog, error)
}

type DriverService interface {
	GetDriver(ctx context.Context, id uuid.UUID) (*entities.Driver, error)
	GetDrivers(ctx context.Context, filter entities.DriverFilter) ([]entities.Driver, error)
	UpdateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
