package driver

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"

	"github.com/google/uuid"
)

type Driver struct {
	repository Repository
}

func New(repository Repository) *Driver {
	return &Driver{
		repository: repository,
	}
}

// CreateDriver регистрирует водителя. Без is_available водитель создаётся
// неготовым принимать заявки.
func (s *Driver) CreateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	if driverModify.Name == nil ||
		driverModify.Phone == nil ||
		driverModify.VehicleRegistration == nil ||
		driverModify.VehicleType == nil {
		return nil, ErrMissingRequiredFields
	}

	if err := validateModify(driverModify); err != nil {
		return nil, err
	}

	driverEntity := entities.Driver{
		ID:                  uuid.New(),
		Name:                *driverModify.Name,
		Phone:               *driverModify.Phone,
		VehicleRegistration: *driverModify.VehicleRegistration,
		VehicleType:         *driverModify.VehicleType,
		CurrentLocation:     driverModify.CurrentLocation,
		CreatedAt:           time.Now().UTC(),
	}
	if driverModify.IsAvailable != nil {
		driverEntity.IsAvailable = *driverModify.IsAvailable
	}

	created, err := s.repository.Create(ctx, driverEntity)
	if err != nil {
		return nil, fmt.Errorf("create driver: %w", err)
	}

	return created, nil
}

func (s *Driver) UpdateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	if driverModify.ID == nil {
		return nil, fmt.Errorf("driver id: %w", ErrMissingRequiredFields)
	}
	if driverModify.Name == nil &&
		driverModify.Phone == nil &&
		driverModify.VehicleRegistration == nil &&
		driverModify.VehicleType == nil &&
		driverModify.IsAvailable == nil &&
		driverModify.CurrentLocation == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if err := validateModify(driverModify); err != nil {
		return nil, err
	}

	driver, err := s.repository.Update(ctx, driverModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update driver: %w", err)
	}
	return driver, nil
}

func (s *Driver) GetDriver(ctx context.Context, id uuid.UUID) (*entities.Driver, error) {
	driver, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	return driver, nil
}

func (s *Driver) GetDrivers(ctx context.Context, filter entities.DriverFilter) ([]entities.Driver, error) {
	drivers, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get drivers: %w", err)
	}

	return drivers, nil
}

func validateModify(driverModify entities.DriverModify) error {
	if driverModify.Name != nil && !isValidName(*driverModify.Name) {
		return ErrInvalidName
	}
	if driverModify.Phone != nil && !isValidPhone(*driverModify.Phone) {
		return ErrInvalidPhone
	}
	if driverModify.VehicleRegistration != nil && !isValidVehicleRegistration(*driverModify.VehicleRegistration) {
		return ErrInvalidVehicleRegistration
	}
	if driverModify.VehicleType != nil && !isValidVehicleType(*driverModify.VehicleType) {
		return ErrInvalidVehicleType
	}
	if driverModify.CurrentLocation != nil && !isValidName(*driverModify.CurrentLocation) {
		return ErrInvalidLocation
	}
	return nil
}
