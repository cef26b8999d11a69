//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=requester_active_request_get_test
package requester_active_request_get

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
	GetActiveRequest(ctx context.Context, requesterID uuid.UUID) (*entities.TransportRequest, error)
}
