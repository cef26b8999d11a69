//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"
	"time"

	"dispatch/internal/entities"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, request entities.TransportRequest) (*entities.TransportRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.TransportRequest, error)
	List(ctx context.Context, filter entities.TransportRequestFilter) ([]entities.TransportRequest, error)

	Claim(ctx context.Context, claim entities.RequestClaim) (*entities.TransportRequest, error)
	Transition(ctx context.Context, transition entities.StatusTransition) (*entities.TransportRequest, error)
}

type DriverService interface {
	GetDriver(ctx context.Context, id uuid.UUID) (*entities.Driver, error)
}

type ArrivalEstimator interface {
	EstimateArrival(claimedAt time.Time) time.Time
}
