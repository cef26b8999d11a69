//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_test
package driver

import (
	"context"

	"dispatch/internal/entities"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, driverEntity entities.Driver) (*entities.Driver, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Driver, error)
	List(ctx context.Context, filter entities.DriverFilter) ([]entities.Driver, error)
	Update(ctx context.Context, driverModifyEntity entities.DriverModify) (*entities.Driver, error)
}
