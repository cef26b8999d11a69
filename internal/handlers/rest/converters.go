package rest

import (
	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
)

func TransportRequestToDTO(request *entities.TransportRequest) dto.TransportRequest {
	out := dto.TransportRequest{
		Id:                 request.ID.String(),
		RequesterId:        request.RequesterID.String(),
		Pickup:             request.Pickup,
		Destination:        request.Destination,
		Priority:           request.Priority.String(),
		Notes:              request.Notes,
		Status:             request.Status.String(),
		Location:           request.Location,
		Latitude:           request.Latitude,
		Longitude:          request.Longitude,
		EstimatedArrival:   request.EstimatedArrival,
		CancellationReason: request.CancellationReason,
		CompletedAt:        request.CompletedAt,
		CreatedAt:          request.CreatedAt,
		UpdatedAt:          request.UpdatedAt,
	}
	if request.DriverID != nil {
		driverID := request.DriverID.String()
		out.DriverId = &driverID
	}

	return out
}

func TransportRequestsToDTO(requests []entities.TransportRequest) []dto.TransportRequest {
	out := make([]dto.TransportRequest, 0, len(requests))
	for i := range requests {
		out = append(out, TransportRequestToDTO(&requests[i]))
	}

	return out
}

func DriverToDTO(driver *entities.Driver) dto.Driver {
	return dto.Driver{
		Id:                  driver.ID.String(),
		Name:                driver.Name,
		Phone:               driver.Phone,
		VehicleRegistration: driver.VehicleRegistration,
		VehicleType:         driver.VehicleType.String(),
		IsAvailable:         driver.IsAvailable,
		CurrentLocation:     driver.CurrentLocation,
		CreatedAt:           driver.CreatedAt,
		UpdatedAt:           driver.UpdatedAt,
	}
}

func DriversToDTO(drivers []entities.Driver) []dto.Driver {
	out := make([]dto.Driver, 0, len(drivers))
	for i := range drivers {
		out = append(out, DriverToDTO(&drivers[i]))
	}

	return out
}
