//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_telemetry_test
package driver_telemetry

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ProcessTelemetry(ctx context.Context, event entities.DriverTelemetry) (bool, error)
}
