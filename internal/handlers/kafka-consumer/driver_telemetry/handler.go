package driver_telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"dispatch/internal/service/dispatch"
	"dispatch/internal/service/driver"
	"dispatch/internal/service/telemetry"
	"dispatch/pkg/logger"

	"github.com/IBM/sarama"
)

type Handler struct {
	telemetryService         Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, telemetryService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "driver.telemetry"),
	)

	return &Handler{
		telemetryService:         telemetryService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("driver.telemetry: claim messages closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("driver.telemetry: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать. Сообщение при этом
// не коммитится и будет прочитано снова.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event telemetryEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("driver.telemetry handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("driver_id", event.DriverID.String()),
		logger.NewField("type", event.Type),
		logger.NewField("offset", message.Offset),
	)

	applied, err := h.telemetryService.ProcessTelemetry(ctx, event.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("driver.telemetry handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, telemetry.ErrInvalidEvent),
			errors.Is(err, dispatch.ErrValidation):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("driver.telemetry handler invalid event")

		case errors.Is(err, driver.ErrDriverNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("driver.telemetry handler unknown driver")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("driver.telemetry handler failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	if !applied {
		msgLog.Warn("driver.telemetry handler skipped unknown event type")
	} else {
		msgLog.Info("driver.telemetry: processed")
	}

	sess.MarkMessage(message, "")
	return false
}
