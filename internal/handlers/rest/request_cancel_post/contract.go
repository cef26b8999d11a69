//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=request_cancel_post_test
package request_cancel_post

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
	Cancel(ctx context.Context, cancel entities.RequestCancel) (*entities.TransportRequest, error)
}
