package driver_put

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
		logger.NewField("handler", "driver_put"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var driverUpdateDTO dto.DriverUpdate
	if err := rest.DecodeJSON(r, &driverUpdateDTO); err != nil {
		rest.WriteError(w, h.log, err)
		return
	}

	id, err := rest.ParseID("id", driverUpdateDTO.Id)
	if err != nil {
		rest.WriteBadRequest(w, h.log, err.Error())
		return
	}

	driverModify := entities.DriverModify{
		ID:                  &id,
		Name:                driverUpdateDTO.Name,
		Phone:               driverUpdateDTO.Phone,
		VehicleRegistration: driverUpdateDTO.VehicleRegistration,
		IsAvailable:         driverUpdateDTO.IsAvailable,
		CurrentLocation:     driverUpdateDTO.CurrentLocation,
	}
	if driverUpdateDTO.VehicleType != nil {
		vehicleType := entities.VehicleType(*driverUpdateDTO.VehicleType)
		driverModify.VehicleType = &vehicleType
	}

	updated, err := h.service.UpdateDriver(r.Context(), driverModify)
	if err != nil {
		rest.WriteError(w, h.log, err)
		return
	}

	rest.WriteJSON(w, h.log, http.StatusOK, rest.DriverToDTO(updated))
}
