package request_cancel_post

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
		logger.NewField("handler", "request_cancel_post"),
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

	var cancelDTO dto.CancelRequest
	if err = rest.DecodeJSON(r, &cancelDTO); err != nil {
		rest.WriteError(w, h.log, err)
		return
	}

	actorID, err := rest.ParseID("actor_id", cancelDTO.ActorId)
	if err != nil {
		rest.WriteBadRequest(w, h.log, err.Error())
		return
	}

	cancelled, err := h.service.Cancel(r.Context(), entities.RequestCancel{
		RequestID: requestID,
		ActorID:   actorID,
		Reason:    cancelDTO.Reason,
	})
	if err != nil {
		rest.WriteError(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("request_id", requestID.String()),
		logger.NewField("actor_id", actorID.String()),
	).Info("transport request cancelled")

	rest.WriteJSON(w, h.log, http.StatusOK, rest.TransportRequestToDTO(cancelled))
}
