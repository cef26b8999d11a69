package request_claim_post

import (
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest"
	"dispatch/pkg/logger"

	"github.com/AlekSi/pointer"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "request_claim_post"),
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

	var claimDTO dto.ClaimRequest
	if err = rest.DecodeJSON(r, &claimDTO); err != nil {
		rest.WriteError(w, h.log, err)
		return
	}

	driverID, err := rest.ParseID("driver_id", claimDTO.DriverId)
	if err != nil {
		rest.WriteBadRequest(w, h.log, err.Error())
		return
	}

	claimed, err := h.service.Claim(r.Context(), entities.RequestClaim{
		RequestID: requestID,
		DriverID:  driverID,
		Location:  pointer.GetString(claimDTO.Location),
	})
	if err != nil {
		rest.WriteError(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("request_id", requestID.String()),
		logger.NewField("driver_id", driverID.String()),
	).Info("transport request claimed")

	rest.WriteJSON(w, h.log, http.StatusOK, rest.TransportRequestToDTO(claimed))
}
