package transport_request

import (
	"time"

	"github.com/google/uuid"
)

type TransportRequestDB struct {
	ID                 uuid.UUID
	RequesterID        uuid.UUID
	DriverID           *uuid.UUID
	Pickup             string
	Destination        string
	Priority           string
	Notes              *string
	Status             string
	Location           *string
	Latitude           *float64
	Longitude          *float64
	EstimatedArrival   *time.Time
	CancellationReason *string
	CompletedAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type PendingBacklogDB struct {
	Count         int64
	OldestCreated *time.Time
}
