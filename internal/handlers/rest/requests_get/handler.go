package requests_get

import (
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest"
	"dispatch/pkg/logger"
)

const errOneFilter = "exactly one of requester_id or driver_id is required"

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "requests_get"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP отдаёт историю заявок пострадавшего или водителя, новые первыми.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	requesterRaw := query.Get("requester_id")
	driverRaw := query.Get("driver_id")
	if (requesterRaw == "") == (driverRaw == "") {
		rest.WriteBadRequest(w, h.log, errOneFilter)
		return
	}

	var requests []entities.TransportRequest
	if requesterRaw != "" {
		requesterID, err := rest.ParseID("requester_id", requesterRaw)
		if err != nil {
			rest.WriteBadRequest(w, h.log, err.Error())
			return
		}
		requests, err = h.service.ListRequesterRequests(r.Context(), requesterID)
		if err != nil {
			rest.WriteError(w, h.log, err)
			return
		}
	} else {
		driverID, err := rest.ParseID("driver_id", driverRaw)
		if err != nil {
			rest.WriteBadRequest(w, h.log, err.Error())
			return
		}
		requests, err = h.service.ListDriverRequests(r.Context(), driverID)
		if err != nil {
			rest.WriteError(w, h.log, err)
			return
		}
	}

	rest.WriteJSON(w, h.log, http.StatusOK, rest.TransportRequestsToDTO(requests))
}
