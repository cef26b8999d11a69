//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_availability_put_test
package driver_availability_put

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
	ToggleAvailability(ctx context.Context, driverID uuid.UUID, available bool) (*entities.Driver, error)
}
