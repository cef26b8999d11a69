//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_location_put_test
package driver_location_put

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"

	"github.com/google/uuid"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateDriverLocation(ctx context.Context, driverID uuid.UUID, location entities.DriverLocation) (int64, error)
}
