package driver_availability_put

import (
	"net/http"

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
		logger.NewField("handler", "driver_availability_put"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	driverID, err := rest.PathID(r)
	if err != nil {
		rest.WriteBadRequest(w, h.log, err.Error())
		return
	}

	var availabilityDTO dto.DriverAvailabilityUpdate
	if err = rest.DecodeJSON(r, &availabilityDTO); err != nil {
		rest.WriteError(w, h.log, err)
		return
	}
	if availabilityDTO.IsAvailable == nil {
		rest.WriteBadRequest(w, h.log, "is_available is required")
		return
	}

	driver, err := h.service.ToggleAvailability(r.Context(), driverID, *availabilityDTO.IsAvailable)
	if err != nil {
		rest.WriteError(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("driver_id", driverID.String()),
		logger.NewField("is_available", driver.IsAvailable),
	).Info("driver availability changed")

	rest.WriteJSON(w, h.log, http.StatusOK, rest.DriverToDTO(driver))
}
