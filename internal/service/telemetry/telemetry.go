package telemetry

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"

	"github.com/google/uuid"
)

type Service struct {
	handlerFactory HandlerFactory
}

func New(handlerFactory HandlerFactory) *Service {
	return &Service{
		handlerFactory: handlerFactory,
	}
}

// ProcessTelemetry применяет событие водителя. Неизвестные типы пропускаются,
// второе значение false в этом случае.
func (s *Service) ProcessTelemetry(ctx context.Context, event entities.DriverTelemetry) (bool, error) {
	if event.DriverID == uuid.Nil || event.Type == "" {
		return false, fmt.Errorf("driver id and type are required: %w", ErrInvalidEvent)
	}

	executeFn, err := s.handlerFactory.GetHandler(event.Type)
	if err != nil {
		if errors.Is(err, ErrUndefinedType) {
			return false, nil
		}
		return false, err
	}

	if err := executeFn(ctx, event); err != nil {
		return false, err
	}

	return true, nil
}
