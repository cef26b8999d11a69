package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/entities"

	"github.com/google/uuid"
)

type Dispatch struct {
	repository       Repository
	driverService    DriverService
	arrivalEstimator ArrivalEstimator
}

func New(
	repository Repository,
	driverService DriverService,
	arrivalEstimator ArrivalEstimator,
) *Dispatch {
	return &Dispatch{
		repository:       repository,
		driverService:    driverService,
		arrivalEstimator: arrivalEstimator,
	}
}

// Create заводит заявку в статусе pending без водителя.
func (d *Dispatch) Create(ctx context.Context, in entities.TransportRequestCreate) (*entities.TransportRequest, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	request := entities.TransportRequest{
		ID:          uuid.New(),
		RequesterID: in.RequesterID,
		Pickup:      strings.TrimSpace(in.Pickup),
		Destination: strings.TrimSpace(in.Destination),
		Priority:    in.Priority,
		Notes:       in.Notes,
		Status:      entities.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := d.repository.Create(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("create transport request: %w", err)
	}

	return created, nil
}

// Claim закрепляет pending заявку за водителем. Из двух одновременных попыток
// проходит ровно одна, вторая получает ErrConflict.
func (d *Dispatch) Claim(ctx context.Context, claim entities.RequestClaim) (*entities.TransportRequest, error) {
	driver, err := d.driverService.GetDriver(ctx, claim.DriverID)
	if err != nil {
		return nil, fmt.Errorf("claim: %w", err)
	}
	if !driver.IsAvailable {
		return nil, ErrDriverUnavailable
	}

	claim.Location = strings.TrimSpace(claim.Location)
	if claim.Location == "" {
		claim.Location = entities.DefaultDriverLocation
	}
	claim.EstimatedArrival = d.arrivalEstimator.EstimateArrival(time.Now().UTC())

	claimed, err := d.repository.Claim(ctx, claim)
	if err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, d.explainConflict(ctx, claim.RequestID)
		}
		return nil, fmt.Errorf("claim: %w", err)
	}

	TransitionsTotal.WithLabelValues(entities.StatusPending.String(), entities.StatusAccepted.String()).Inc()
	return claimed, nil
}

// Advance выполняет следующий шаг водителя: accepted -> en-route -> arrived -> completed.
func (d *Dispatch) Advance(ctx context.Context, advance entities.RequestAdvance) (*entities.TransportRequest, error) {
	current, err := d.repository.GetByID(ctx, advance.RequestID)
	if err != nil {
		return nil, fmt.Errorf("advance: %w", err)
	}

	if current.Status.IsTerminal() {
		return nil, fmt.Errorf("request is %s: %w", current.Status, ErrInvalidTransition)
	}
	if !current.IsAssignedTo(advance.DriverID) {
		return nil, fmt.Errorf("request is not assigned to driver %s: %w", advance.DriverID, ErrInvalidTransition)
	}

	next, ok := current.Status.NextAdvance()
	if !ok || next != advance.NextStatus || !current.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%s -> %s: %w", current.Status, advance.NextStatus, ErrInvalidTransition)
	}

	transition := entities.StatusTransition{
		RequestID: current.ID,
		From:      current.Status,
		To:        next,
		DriverID:  &advance.DriverID,
	}
	if advance.Location != nil && isValidLocation(*advance.Location) {
		location := strings.TrimSpace(*advance.Location)
		transition.Location = &location
	}

	return d.applyTransition(ctx, "advance", transition)
}

// Cancel отменяет нетерминальную заявку. Отменить может заявитель или назначенный водитель.
func (d *Dispatch) Cancel(ctx context.Context, cancel entities.RequestCancel) (*entities.TransportRequest, error) {
	current, err := d.repository.GetByID(ctx, cancel.RequestID)
	if err != nil {
		return nil, fmt.Errorf("cancel: %w", err)
	}

	if current.Status.IsTerminal() {
		return nil, fmt.Errorf("request is already %s: %w", current.Status, ErrConflict)
	}
	if current.RequesterID != cancel.ActorID && !current.IsAssignedTo(cancel.ActorID) {
		return nil, fmt.Errorf("actor %s may not cancel request: %w", cancel.ActorID, ErrInvalidTransition)
	}

	transition := entities.StatusTransition{
		RequestID: current.ID,
		From:      current.Status,
		To:        entities.StatusCancelled,
	}
	if cancel.Reason != nil && strings.TrimSpace(*cancel.Reason) != "" {
		reason := strings.TrimSpace(*cancel.Reason)
		transition.CancellationReason = &reason
	}

	return d.applyTransition(ctx, "cancel", transition)
}

func (d *Dispatch) GetRequest(ctx context.Context, id uuid.UUID) (*entities.TransportRequest, error) {
	request, err := d.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get transport request: %w", err)
	}

	return request, nil
}

func (d *Dispatch) ListRequesterRequests(ctx context.Context, requesterID uuid.UUID) ([]entities.TransportRequest, error) {
	requests, err := d.repository.List(ctx, entities.TransportRequestFilter{
		RequesterID: &requesterID,
		Order:       entities.NewestFirst,
	})
	if err != nil {
		return nil, fmt.Errorf("list requester requests: %w", err)
	}

	return requests, nil
}

func (d *Dispatch) ListDriverRequests(ctx context.Context, driverID uuid.UUID) ([]entities.TransportRequest, error) {
	requests, err := d.repository.List(ctx, entities.TransportRequestFilter{
		DriverID: &driverID,
		Order:    entities.NewestFirst,
	})
	if err != nil {
		return nil, fmt.Errorf("list driver requests: %w", err)
	}

	return requests, nil
}

// GetActiveRequest последняя заявка заявителя, которую сейчас везут.
func (d *Dispatch) GetActiveRequest(ctx context.Context, requesterID uuid.UUID) (*entities.TransportRequest, error) {
	requests, err := d.repository.List(ctx, entities.TransportRequestFilter{
		RequesterID: &requesterID,
		Statuses:    entities.ActiveStatuses,
		Order:       entities.NewestFirst,
		Limit:       1,
	})
	if err != nil {
		return nil, fmt.Errorf("get active request: %w", err)
	}
	if len(requests) == 0 {
		return nil, ErrRequestNotFound
	}

	return &requests[0], nil
}

func (d *Dispatch) applyTransition(ctx context.Context, op string, transition entities.StatusTransition) (*entities.TransportRequest, error) {
	updated, err := d.repository.Transition(ctx, transition)
	if err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, d.explainTransitionConflict(ctx, op, transition)
		}
		return nil, fmt.Errorf("%s %s -> %s: %w", op, transition.From, transition.To, err)
	}

	TransitionsTotal.WithLabelValues(transition.From.String(), transition.To.String()).Inc()
	return updated, nil
}

// explainConflict перечитывает заявку после несработавшей условной записи.
func (d *Dispatch) explainConflict(ctx context.Context, id uuid.UUID) error {
	_, err := d.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrRequestNotFound) {
			return ErrRequestNotFound
		}
		return fmt.Errorf("claim: %w", err)
	}

	ClaimConflictsTotal.Inc()
	return fmt.Errorf("request %s is no longer pending: %w", id, ErrConflict)
}

// explainTransitionConflict перечитывает заявку после проигранной гонки за переход.
// Шаг водителя по уже терминальной заявке это недопустимый переход, а не конфликт.
func (d *Dispatch) explainTransitionConflict(ctx context.Context, op string, transition entities.StatusTransition) error {
	latest, err := d.repository.GetByID(ctx, transition.RequestID)
	if err != nil {
		if errors.Is(err, ErrRequestNotFound) {
			return ErrRequestNotFound
		}
		return fmt.Errorf("%s %s -> %s: %w", op, transition.From, transition.To, err)
	}

	if transition.To != entities.StatusCancelled && latest.Status.IsTerminal() {
		return fmt.Errorf("%s %s -> %s: request is %s: %w", op, transition.From, transition.To, latest.Status, ErrInvalidTransition)
	}

	return fmt.Errorf("%s %s -> %s: request is now %s: %w", op, transition.From, transition.To, latest.Status, ErrConflict)
}
