//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=request_location_put_test
package request_location_put

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
	UpdateLocation(ctx context.Context, update entities.LocationUpdate) (*entities.TransportRequest, error)
}
