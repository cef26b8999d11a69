//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=request_post_test
package request_post

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
	Create(ctx context.Context, in entities.TransportRequestCreate) (*entities.TransportRequest, error)
}
