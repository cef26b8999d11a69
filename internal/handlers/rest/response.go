package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/generated/dto"
	"dispatch/internal/service/dispatch"
	"dispatch/internal/service/driver"
	"dispatch/pkg/logger"
)

const internalErrorMessage = "internal server error"

type responseLogger interface {
	With(fields ...logger.Field) logger.Logger
}

// StatusFromError переводит ошибку сервисного слоя в HTTP-статус.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, ErrMalformedBody),
		errors.Is(err, dispatch.ErrValidation),
		errors.Is(err, driver.ErrMissingRequiredFields),
		errors.Is(err, driver.ErrInvalidName),
		errors.Is(err, driver.ErrInvalidPhone),
		errors.Is(err, driver.ErrInvalidVehicleRegistration),
		errors.Is(err, driver.ErrInvalidVehicleType),
		errors.Is(err, driver.ErrInvalidLocation):
		return http.StatusBadRequest
	case errors.Is(err, dispatch.ErrRequestNotFound),
		errors.Is(err, driver.ErrDriverNotFound):
		return http.StatusNotFound
	case errors.Is(err, dispatch.ErrConflict),
		errors.Is(err, dispatch.ErrDriverUnavailable),
		errors.Is(err, driver.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, dispatch.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func WriteJSON(w http.ResponseWriter, log responseLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// WriteError отдаёт {"error": ...}. Текст внутренних ошибок наружу не уходит.
func WriteError(w http.ResponseWriter, log responseLogger, err error) {
	status := StatusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.With(
			logger.NewField("error", err),
		).Error("request failed")
		message = internalErrorMessage
	}

	WriteJSON(w, log, status, dto.ErrorResponse{Error: message})
}

func WriteBadRequest(w http.ResponseWriter, log responseLogger, message string) {
	WriteJSON(w, log, http.StatusBadRequest, dto.ErrorResponse{Error: message})
}
