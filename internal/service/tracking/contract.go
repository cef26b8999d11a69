//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"dispatch/internal/entities"

	"github.com/google/uuid"
)

type RequestService interface {
	GetRequest(ctx context.Context, id uuid.UUID) (*entities.TransportRequest, error)
}
