package driver_telemetry

import (
	"dispatch/internal/entities"

	"github.com/google/uuid"
)

type telemetryEvent struct {
	DriverID  uuid.UUID `json:"driver_id"`
	Type      string    `json:"type"`
	Location  *string   `json:"location,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	Available *bool     `json:"available,omitempty"`
}

func (e telemetryEvent) toDomain() entities.DriverTelemetry {
	return entities.DriverTelemetry{
		DriverID:  e.DriverID,
		Type:      entities.TelemetryType(e.Type),
		Location:  e.Location,
		Latitude:  e.Latitude,
		Longitude: e.Longitude,
		Available: e.Available,
	}
}
