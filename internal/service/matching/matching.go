package matching

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/entities"
	"dispatch/internal/service/dispatch"

	"github.com/google/uuid"
)

type Matching struct {
	repository    Repository
	driverService DriverService
	txManager     TxManager
}

func New(
	repository Repository,
	driverService DriverService,
	txManager TxManager,
) *Matching {
	return &Matching{
		repository:    repository,
		driverService: driverService,
		txManager:     txManager,
	}
}

// ListPending свободные заявки для водителя, старые первыми. Водитель, который не
// принимает заявки, видит пустой список.
func (m *Matching) ListPending(ctx context.Context, driverID uuid.UUID) ([]entities.TransportRequest, error) {
	driver, err := m.driverService.GetDriver(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("list pending: %w", err)
	}
	if !driver.IsAvailable {
		return []entities.TransportRequest{}, nil
	}

	requests, err := m.repository.List(ctx, entities.TransportRequestFilter{
		Statuses:       []entities.RequestStatus{entities.StatusPending},
		OnlyUnassigned: true,
		Order:          entities.OldestFirst,
	})
	if err != nil {
		return nil, fmt.Errorf("list pending: %w", err)
	}

	return requests, nil
}

// ToggleAvailability меняет только флаг водителя, заявки не трогает.
func (m *Matching) ToggleAvailability(ctx context.Context, driverID uuid.UUID, available bool) (*entities.Driver, error) {
	driver, err := m.driverService.UpdateDriver(ctx, entities.DriverModify{
		ID:          &driverID,
		IsAvailable: &available,
	})
	if err != nil {
		return nil, fmt.Errorf("toggle availability: %w", err)
	}

	return driver, nil
}

// UpdateLocation перезаписывает местоположение заявки, статус не меняется.
func (m *Matching) UpdateLocation(ctx context.Context, update entities.LocationUpdate) (*entities.TransportRequest, error) {
	update.Location = strings.TrimSpace(update.Location)
	if update.Location == "" {
		return nil, fmt.Errorf("location is required: %w", dispatch.ErrValidation)
	}
	if err := validateCoordinates(update.Latitude, update.Longitude); err != nil {
		return nil, err
	}

	updated, err := m.repository.UpdateLocation(ctx, update)
	if err != nil {
		if errors.Is(err, dispatch.ErrConflict) {
			return nil, m.explainLocationConflict(ctx, update.RequestID)
		}
		return nil, fmt.Errorf("update location: %w", err)
	}

	return updated, nil
}

// UpdateDriverLocation в одной транзакции обновляет местоположение водителя и всех его
// активных заявок, координаты переносятся в заявки. Возвращает число обновлённых заявок.
func (m *Matching) UpdateDriverLocation(ctx context.Context, driverID uuid.UUID, location entities.DriverLocation) (int64, error) {
	location.Location = strings.TrimSpace(location.Location)
	if location.Location == "" {
		return 0, fmt.Errorf("location is required: %w", dispatch.ErrValidation)
	}
	if err := validateCoordinates(location.Latitude, location.Longitude); err != nil {
		return 0, err
	}

	var updatedRequests int64
	err := m.txManager.Do(ctx, func(ctx context.Context) error {
		_, err := m.driverService.UpdateDriver(ctx, entities.DriverModify{
			ID:              &driverID,
			CurrentLocation: &location.Location,
		})
		if err != nil {
			return fmt.Errorf("update driver location: %w", err)
		}

		updatedRequests, err = m.repository.UpdateLocationByDriver(ctx, driverID, location)
		if err != nil {
			return fmt.Errorf("update active requests location: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return updatedRequests, nil
}

func (m *Matching) ListAvailableDrivers(ctx context.Context) ([]entities.Driver, error) {
	drivers, err := m.driverService.GetDrivers(ctx, entities.DriverFilter{AvailableOnly: true})
	if err != nil {
		return nil, fmt.Errorf("list available drivers: %w", err)
	}

	return drivers, nil
}

func (m *Matching) PendingBacklog(ctx context.Context) (*entities.PendingBacklog, error) {
	backlog, err := m.repository.PendingBacklog(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("pending backlog timed out: %w", err)
		}
		return nil, fmt.Errorf("pending backlog: %w", err)
	}

	return backlog, nil
}

func (m *Matching) explainLocationConflict(ctx context.Context, id uuid.UUID) error {
	current, err := m.repository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	if current.Status.IsTerminal() {
		return fmt.Errorf("request is %s: %w", current.Status, dispatch.ErrInvalidTransition)
	}

	return fmt.Errorf("update location: %w", dispatch.ErrConflict)
}

func validateCoordinates(latitude, longitude *float64) error {
	if latitude == nil && longitude == nil {
		return nil
	}
	if latitude == nil || longitude == nil {
		return fmt.Errorf("latitude and longitude go together: %w", dispatch.ErrValidation)
	}
	if *latitude < -90 || *latitude > 90 || *longitude < -180 || *longitude > 180 {
		return fmt.Errorf("coordinates out of range: %w", dispatch.ErrValidation)
	}
	return nil
}
