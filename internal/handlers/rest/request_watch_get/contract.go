//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=request_watch_get_test
package request_watch_get

import (
	"context"
	"time"

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
	WaitForUpdate(ctx context.Context, id uuid.UUID, since time.Time) (*entities.TransportRequest, bool, error)
}
