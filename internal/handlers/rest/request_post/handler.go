package request_post

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
		logger.NewField("handler", "request_post"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.TransportRequestCreate
	if err := rest.DecodeJSON(r, &createDTO); err != nil {
		rest.WriteError(w, h.log, err)
		return
	}

	requesterID, err := rest.ParseID("requester_id", createDTO.RequesterId)
	if err != nil {
		rest.WriteBadRequest(w, h.log, err.Error())
		return
	}

	created, err := h.service.Create(r.Context(), entities.TransportRequestCreate{
		RequesterID: requesterID,
		Pickup:      createDTO.Pickup,
		Destination: createDTO.Destination,
		Priority:    entities.Priority(createDTO.Priority),
		Notes:       createDTO.Notes,
	})
	if err != nil {
		rest.WriteError(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("request_id", created.ID.String()),
		logger.NewField("priority", created.Priority.String()),
	).Info("transport request created")

	rest.WriteJSON(w, h.log, http.StatusCreated, rest.TransportRequestToDTO(created))
}
