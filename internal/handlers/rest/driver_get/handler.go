package driver_get

import (
	"net/http"

	"dispatch/internal/handlers/rest"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "driver_get"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := rest.PathID(r)
	if err != nil {
		rest.WriteBadRequest(w, h.log, err.Error())
		return
	}

	driver, err := h.service.GetDriver(r.Context(), id)
	if err != nil {
		rest.WriteError(w, h.log, err)
		return
	}

	rest.WriteJSON(w, h.log, http.StatusOK, rest.DriverToDTO(driver))
}
