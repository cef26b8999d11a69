package transport_request

import (
	"dispatch/internal/entities"
)

func ToDomain(r *TransportRequestDB) *entities.TransportRequest {
	if r == nil {
		return nil
	}

	return &entities.TransportRequest{
		ID:                 r.ID,
		RequesterID:        r.RequesterID,
		DriverID:           r.DriverID,
		Pickup:             r.Pickup,
		Destination:        r.Destination,
		Priority:           entities.Priority(r.Priority),
		Notes:              r.Notes,
		Status:             entities.RequestStatus(r.Status),
		Location:           r.Location,
		Latitude:           r.Latitude,
		Longitude:          r.Longitude,
		EstimatedArrival:   r.EstimatedArrival,
		CancellationReason: r.CancellationReason,
		CompletedAt:        r.CompletedAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

func ToDomainList(requestsDB []TransportRequestDB) []entities.TransportRequest {
	if len(requestsDB) == 0 {
		return []entities.TransportRequest{}
	}

	result := make([]entities.TransportRequest, len(requestsDB))
	for i := range requestsDB {
		result[i] = *ToDomain(&requestsDB[i])
	}
	return result
}

func statusesToStrings(statuses []entities.RequestStatus) []string {
	result := make([]string, len(statuses))
	for i, status := range statuses {
		result[i] = status.String()
	}
	return result
}
