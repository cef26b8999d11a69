package ping_get

import (
	"net/http"

	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest"
	"dispatch/pkg/logger"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "ping_get"),
	)

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	message := "pong"
	rest.WriteJSON(w, h.log, http.StatusOK, dto.PingResponse{
		Message: &message,
	})
}
