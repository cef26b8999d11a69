package transport_request

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/dispatch"
	"dispatch/internal/service/driver"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const requestColumns = `id, requester_id, driver_id, pickup, destination, priority, notes, status,
	location, latitude, longitude, estimated_arrival, cancellation_reason, completed_at, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, request entities.TransportRequest) (*entities.TransportRequest, error) {
	query := `INSERT INTO transport_requests (id, requester_id, pickup, destination, priority, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING ` + requestColumns

	requestModel, err := scanRequest(r.querier.QueryRow(
		ctx,
		query,
		request.ID,
		request.RequesterID,
		request.Pickup,
		request.Destination,
		request.Priority.String(),
		request.Notes,
		request.Status.String(),
		request.CreatedAt,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, dispatch.ErrConflict
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, dispatch.ErrValidation
		}
		return nil, fmt.Errorf("unexpected transport request repository create error: %w", err)
	}

	return ToDomain(requestModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.TransportRequest, error) {
	query := `SELECT ` + requestColumns + `
		FROM transport_requests
		WHERE id = $1`

	requestModel, err := scanRequest(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrRequestNotFound
		}
		return nil, fmt.Errorf("unexpected transport request repository getbyid error: %w", err)
	}

	return ToDomain(requestModel), nil
}

func (r *Repository) List(ctx context.Context, filter entities.TransportRequestFilter) ([]entities.TransportRequest, error) {
	builder := qb.
		Select(requestColumns).
		From("transport_requests")

	if filter.RequesterID != nil {
		builder = builder.Where(sq.Eq{"requester_id": filter.RequesterID.String()})
	}
	if filter.DriverID != nil {
		builder = builder.Where(sq.Eq{"driver_id": filter.DriverID.String()})
	}
	if len(filter.Statuses) > 0 {
		builder = builder.Where(sq.Eq{"status": statusesToStrings(filter.Statuses)})
	}
	if filter.OnlyUnassigned {
		builder = builder.Where(sq.Eq{"driver_id": nil})
	}

	switch filter.Order {
	case entities.NewestFirst:
		builder = builder.OrderBy("created_at DESC", "id DESC")
	default:
		builder = builder.OrderBy("created_at ASC", "id ASC")
	}

	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected transport request repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected transport request repository list error: %w", err)
	}
	defer rows.Close()

	requestModels := make([]TransportRequestDB, 0, 8)
	for rows.Next() {
		requestModel, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected transport request repository list error: %w", err)
		}
		requestModels = append(requestModels, *requestModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected transport request repository list error: %w", err)
	}

	return ToDomainList(requestModels), nil
}

// Claim назначает водителя одной условной записью. Если заявку уже забрали или отменили,
// ни одна строка не совпадёт и вернётся dispatch.ErrConflict.
func (r *Repository) Claim(ctx context.Context, claim entities.RequestClaim) (*entities.TransportRequest, error) {
	query := `UPDATE transport_requests
		SET driver_id = $2,
			status = $3,
			location = $4,
			estimated_arrival = $5,
			updated_at = NOW()
		WHERE id = $1
			AND status = $6
			AND driver_id IS NULL
		RETURNING ` + requestColumns

	requestModel, err := scanRequest(r.querier.QueryRow(
		ctx,
		query,
		claim.RequestID,
		claim.DriverID,
		entities.StatusAccepted.String(),
		claim.Location,
		claim.EstimatedArrival,
		entities.StatusPending.String(),
	))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows),
			repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure):
			return nil, dispatch.ErrConflict
		case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
			return nil, driver.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected transport request repository claim error: %w", err)
	}

	return ToDomain(requestModel), nil
}

// Transition переводит заявку из transition.From в transition.To. Запись условная:
// если статус или водитель успели измениться, возвращается dispatch.ErrConflict.
func (r *Repository) Transition(ctx context.Context, transition entities.StatusTransition) (*entities.TransportRequest, error) {
	builder := qb.
		Update("transport_requests").
		Set("status", transition.To.String()).
		Set("updated_at", sq.Expr("NOW()"))

	if transition.Location != nil {
		builder = builder.Set("location", *transition.Location)
	}
	if transition.CancellationReason != nil {
		builder = builder.Set("cancellation_reason", *transition.CancellationReason)
	}
	if transition.To == entities.StatusCompleted {
		builder = builder.Set("completed_at", sq.Expr("NOW()"))
	}

	builder = builder.Where(sq.Eq{
		"id":     transition.RequestID.String(),
		"status": transition.From.String(),
	})
	if transition.DriverID != nil {
		builder = builder.Where(sq.Eq{"driver_id": transition.DriverID.String()})
	}

	query, args, err := builder.
		Suffix("RETURNING " + requestColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected transport request repository transition error: %w", err)
	}

	requestModel, err := scanRequest(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) ||
			repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, dispatch.ErrConflict
		}
		return nil, fmt.Errorf("unexpected transport request repository transition error: %w", err)
	}

	return ToDomain(requestModel), nil
}

// UpdateLocation перезаписывает местоположение нетерминальной заявки, статус не меняется.
func (r *Repository) UpdateLocation(ctx context.Context, update entities.LocationUpdate) (*entities.TransportRequest, error) {
	builder := qb.
		Update("transport_requests").
		Set("location", update.Location).
		Set("updated_at", sq.Expr("NOW()"))

	if update.Latitude != nil && update.Longitude != nil {
		builder = builder.
			Set("latitude", *update.Latitude).
			Set("longitude", *update.Longitude)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": update.RequestID.String()}).
		Where(sq.NotEq{"status": statusesToStrings(entities.TerminalStatuses)}).
		Suffix("RETURNING " + requestColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected transport request repository update location error: %w", err)
	}

	requestModel, err := scanRequest(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrConflict
		}
		return nil, fmt.Errorf("unexpected transport request repository update location error: %w", err)
	}

	return ToDomain(requestModel), nil
}

// UpdateLocationByDriver переносит местоположение водителя во все его активные заявки.
func (r *Repository) UpdateLocationByDriver(ctx context.Context, driverID uuid.UUID, location entities.DriverLocation) (int64, error) {
	builder := qb.
		Update("transport_requests").
		Set("location", location.Location).
		Set("updated_at", sq.Expr("NOW()"))

	if location.Latitude != nil && location.Longitude != nil {
		builder = builder.
			Set("latitude", *location.Latitude).
			Set("longitude", *location.Longitude)
	}

	query, args, err := builder.
		Where(sq.Eq{
			"driver_id": driverID.String(),
			"status":    statusesToStrings(entities.ActiveStatuses),
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected transport request repository update location by driver error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected transport request repository update location by driver error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) PendingBacklog(ctx context.Context) (*entities.PendingBacklog, error) {
	query := `SELECT COUNT(*), MIN(created_at)
		FROM transport_requests
		WHERE status = $1 AND driver_id IS NULL`

	var backlogModel PendingBacklogDB
	err := r.querier.QueryRow(ctx, query, entities.StatusPending.String()).
		Scan(&backlogModel.Count, &backlogModel.OldestCreated)
	if err != nil {
		return nil, fmt.Errorf("unexpected transport request repository pending backlog error: %w", err)
	}

	return &entities.PendingBacklog{
		Count:         backlogModel.Count,
		OldestCreated: backlogModel.OldestCreated,
	}, nil
}

func scanRequest(row pgx.Row) (*TransportRequestDB, error) {
	var requestModel TransportRequestDB
	err := row.Scan(
		&requestModel.ID,
		&requestModel.RequesterID,
		&requestModel.DriverID,
		&requestModel.Pickup,
		&requestModel.Destination,
		&requestModel.Priority,
		&requestModel.Notes,
		&requestModel.Status,
		&requestModel.Location,
		&requestModel.Latitude,
		&requestModel.Longitude,
		&requestModel.EstimatedArrival,
		&requestModel.CancellationReason,
		&requestModel.CompletedAt,
		&requestModel.CreatedAt,
		&requestModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &requestModel, nil
}
