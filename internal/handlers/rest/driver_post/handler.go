package driver_post

import (
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "driver_post"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var driverCreateDTO dto.DriverCreate
	if err := rest.DecodeJSON(r, &driverCreateDTO); err != nil {
		rest.WriteError(w, h.log, err)
		return
	}

	vehicleType := entities.VehicleType(driverCreateDTO.VehicleType)
	driverModify := entities.DriverModify{
		Name:                &driverCreateDTO.Name,
		Phone:               &driverCreateDTO.Phone,
		VehicleRegistration: &driverCreateDTO.VehicleRegistration,
		VehicleType:         &vehicleType,
		IsAvailable:         driverCreateDTO.IsAvailable,
		CurrentLocation:     driverCreateDTO.CurrentLocation,
	}

	created, err := h.service.CreateDriver(r.Context(), driverModify)
	if err != nil {
		rest.WriteError(w, h.log, err)
		return
	}

	rest.WriteJSON(w, h.log, http.StatusCreated, rest.DriverToDTO(created))
}
