package request_watch_get

import (
	"fmt"
	"net/http"
	"strings"
	"time"

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
		logger.NewField("handler", "request_watch_get"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP держит запрос, пока заявка не изменится после since или не истечёт ожидание.
// Без since сразу отдаёт текущий снимок.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := rest.PathID(r)
	if err != nil {
		rest.WriteBadRequest(w, h.log, err.Error())
		return
	}

	var since time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		// неэкранированный "+" смещения приходит пробелом
		since, err = time.Parse(time.RFC3339, strings.ReplaceAll(raw, " ", "+"))
		if err != nil {
			rest.WriteBadRequest(w, h.log, fmt.Sprintf("invalid since %q, want RFC3339", raw))
			return
		}
	}

	request, changed, err := h.service.WaitForUpdate(r.Context(), id, since)
	if err != nil {
		rest.WriteError(w, h.log, err)
		return
	}

	rest.WriteJSON(w, h.log, http.StatusOK, dto.WatchResponse{
		Changed: changed,
		Request: rest.TransportRequestToDTO(request),
	})
}
