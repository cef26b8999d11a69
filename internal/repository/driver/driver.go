package driver

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/driver"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const driverColumns = "id, name, phone, vehicle_registration, vehicle_type, is_available, current_location, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, driverEntity entities.Driver) (*entities.Driver, error) {
	query := `INSERT INTO drivers (id, name, phone, vehicle_registration, vehicle_type, is_available, current_location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING ` + driverColumns

	driverModel, err := scanDriver(r.querier.QueryRow(
		ctx,
		query,
		driverEntity.ID,
		driverEntity.Name,
		driverEntity.Phone,
		driverEntity.VehicleRegistration,
		driverEntity.VehicleType.String(),
		driverEntity.IsAvailable,
		driverEntity.CurrentLocation,
		driverEntity.CreatedAt,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, driver.ErrConflict
		}
		return nil, fmt.Errorf("unexpected driver repository create error: %w", err)
	}

	return ToDomain(driverModel), nil
}

func (r *Repository) Update(ctx context.Context, driverModifyEntity entities.DriverModify) (*entities.Driver, error) {
	driverModifyModel := FromDomainModify(&driverModifyEntity)
	if driverModifyModel.ID == nil {
		return nil, driver.ErrDriverNotFound
	}

	builder := qb.
		Update("drivers")

	// опционнные поля
	if driverModifyModel.Name != nil {
		builder = builder.Set("name", driverModifyModel.Name)
	}
	if driverModifyModel.Phone != nil {
		builder = builder.Set("phone", driverModifyModel.Phone)
	}
	if driverModifyModel.VehicleRegistration != nil {
		builder = builder.Set("vehicle_registration", driverModifyModel.VehicleRegistration)
	}
	if driverModifyModel.VehicleType != nil {
		builder = builder.Set("vehicle_type", driverModifyModel.VehicleType)
	}
	if driverModifyModel.IsAvailable != nil {
		builder = builder.Set("is_available", driverModifyModel.IsAvailable)
	}
	if driverModifyModel.CurrentLocation != nil {
		builder = builder.Set("current_location", driverModifyModel.CurrentLocation)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": driverModifyModel.ID.String()}).
		Suffix("RETURNING " + driverColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	driverModel, err := scanDriver(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, driver.ErrConflict
		}

		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	return ToDomain(driverModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Driver, error) {
	query := `SELECT ` + driverColumns + `
		FROM drivers
		WHERE id = $1`

	driverModel, err := scanDriver(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}

		return nil, fmt.Errorf("unexpected driver repository getbyid error: %w", err)
	}

	return ToDomain(driverModel), nil
}

func (r *Repository) List(ctx context.Context, filter entities.DriverFilter) ([]entities.Driver, error) {
	builder := qb.
		Select(driverColumns).
		From("drivers").
		OrderBy("name", "id")

	if filter.AvailableOnly {
		builder = builder.Where(sq.Eq{"is_available": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository list error: %w", err)
	}
	defer rows.Close()

	driverModels := make([]DriverDB, 0, 8)
	for rows.Next() {
		driverModel, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected driver repository list error: %w", err)
		}
		driverModels = append(driverModels, *driverModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository list error: %w", err)
	}

	return ToDomainList(driverModels), nil
}

func scanDriver(row pgx.Row) (*DriverDB, error) {
	var driverModel DriverDB
	err := row.Scan(
		&driverModel.ID,
		&driverModel.Name,
		&driverModel.Phone,
		&driverModel.VehicleRegistration,
		&driverModel.VehicleType,
		&driverModel.IsAvailable,
		&driverModel.CurrentLocation,
		&driverModel.CreatedAt,
		&driverModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &driverModel, nil
}
