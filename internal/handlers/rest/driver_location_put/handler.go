package driver_location_put

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
		logger.NewField("handler", "driver_location_put"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP переносит местоположение водителя во все его активные заявки.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	driverID, err := rest.PathID(r)
	if err != nil {
		rest.WriteBadRequest(w, h.log, err.Error())
		return
	}

	var locationDTO dto.DriverLocationUpdate
	if err = rest.DecodeJSON(r, &locationDTO); err != nil {
		rest.WriteError(w, h.log, err)
		return
	}

	updated, err := h.service.UpdateDriverLocation(r.Context(), driverID, entities.DriverLocation{
		Location:  locationDTO.Location,
		Latitude:  locationDTO.Latitude,
		Longitude: locationDTO.Longitude,
	})
	if err != nil {
		rest.WriteError(w, h.log, err)
		return
	}

	rest.WriteJSON(w, h.log, http.StatusOK, dto.DriverLocationUpdateResponse{UpdatedRequests: updated})
}
