package request_advance_post

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
		logger.NewField("handler", "request_advance_post"),
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

	var advanceDTO dto.AdvanceRequest
	if err = rest.DecodeJSON(r, &advanceDTO); err != nil {
		rest.WriteError(w, h.log, err)
		return
	}

	driverID, err := rest.ParseID("driver_id", advanceDTO.DriverId)
	if err != nil {
		rest.WriteBadRequest(w, h.log, err.Error())
		return
	}

	advanced, err := h.service.Advance(r.Context(), entities.RequestAdvance{
		RequestID:  requestID,
		DriverID:   driverID,
		NextStatus: entities.RequestStatus(advanceDTO.NextStatus),
		Location:   advanceDTO.Location,
	})
	if err != nil {
		rest.WriteError(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("request_id", requestID.String()),
		logger.NewField("status", advanced.Status.String()),
	).Info("transport request advanced")

	rest.WriteJSON(w, h.log, http.StatusOK, rest.TransportRequestToDTO(advanced))
}
