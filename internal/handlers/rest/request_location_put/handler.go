package request_location_put

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
		logger.NewField("handler", "request_location_put"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID, err := rest.PathID(r)
	if err != nil {
		rest.WriteBadRequest(w, h.log, err.Error())
		return
	}

	var locationDTO dto.LocationUpdate
	if err = rest.DecodeJSON(r, &locationDTO); err != nil {
		rest.WriteError(w, h.log, err)
		return
	}

	updated, err := h.service.UpdateLocation(r.Context(), entities.LocationUpdate{
		RequestID: requestID,
		Location:  locationDTO.Location,
		Latitude:  locationDTO.Latitude,
		Longitude: locationDTO.Longitude,
	})
	if err != nil {
		rest.WriteError(w, h.log, err)
		return
	}

	rest.WriteJSON(w, h.log, http.StatusOK, rest.TransportRequestToDTO(updated))
}
