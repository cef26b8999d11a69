package drivers_get

import (
	"fmt"
	"net/http"
	"strconv"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "drivers_get"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP отдаёт всех водителей по имени, с ?available=true только готовых принимать заявки.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	availableOnly := false
	if raw := r.URL.Query().Get("available"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			rest.WriteBadRequest(w, h.log, fmt.Sprintf("invalid available %q", raw))
			return
		}
		availableOnly = parsed
	}

	var (
		drivers []entities.Driver
		err     error
	)
	if availableOnly {
		drivers, err = h.service.ListAvailableDrivers(r.Context())
	} else {
		drivers, err = h.service.GetDrivers(r.Context(), entities.DriverFilter{})
	}
	if err != nil {
		rest.WriteError(w, h.log, err)
		return
	}

	rest.WriteJSON(w, h.log, http.StatusOK, rest.DriversToDTO(drivers))
}
