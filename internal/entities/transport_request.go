package entities

import (
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusAccepted  RequestStatus = "accepted"
	StatusEnRoute   RequestStatus = "en-route"
	StatusArrived   RequestStatus = "arrived"
	StatusCompleted RequestStatus = "completed"
	StatusCancelled RequestStatus = "cancelled"
)

func (s RequestStatus) String() string {
	return string(s)
}

// transitions полная таблица допустимых переходов. Всё, чего здесь нет, запрещено.
var transitions = map[RequestStatus][]RequestStatus{
	StatusPending:   {StatusAccepted, StatusCancelled},
	StatusAccepted:  {StatusEnRoute, StatusCancelled},
	StatusEnRoute:   {StatusArrived, StatusCancelled},
	StatusArrived:   {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// advanceSteps шаги, которые водитель выполняет через Advance.
var advanceSteps = map[RequestStatus]RequestStatus{
	StatusAccepted: StatusEnRoute,
	StatusEnRoute:  StatusArrived,
	StatusArrived:  StatusCompleted,
}

// ActiveStatuses заявки, которые водитель сейчас везёт.
var ActiveStatuses = []RequestStatus{StatusAccepted, StatusEnRoute, StatusArrived}

// TerminalStatuses после них переходов нет.
var TerminalStatuses = []RequestStatus{StatusCompleted, StatusCancelled}

func (s RequestStatus) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func (s RequestStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s RequestStatus) IsActive() bool {
	_, ok := advanceSteps[s]
	return ok
}

func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// NextAdvance следующий шаг водителя. false для pending и терминальных статусов.
func (s RequestStatus) NextAdvance() (RequestStatus, bool) {
	next, ok := advanceSteps[s]
	return next, ok
}

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	default:
		return false
	}
}

// DefaultDriverLocation подставляется, когда водитель не прислал местоположение при принятии.
const DefaultDriverLocation = "Location not provided"

type TransportRequest struct {
	ID                 uuid.UUID
	RequesterID        uuid.UUID
	DriverID           *uuid.UUID
	Pickup             string
	Destination        string
	Priority           Priority
	Notes              *string
	Status             RequestStatus
	Location           *string
	Latitude           *float64
	Longitude          *float64
	EstimatedArrival   *time.Time
	CancellationReason *string
	CompletedAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsAssignedTo true, если заявку ведёт указанный водитель.
func (r *TransportRequest) IsAssignedTo(driverID uuid.UUID) bool {
	return r.DriverID != nil && *r.DriverID == driverID
}

type TransportRequestCreate struct {
	RequesterID uuid.UUID `validate:"required"`
	Pickup      string    `validate:"required,notblank,max=500"`
	Destination string    `validate:"required,notblank,max=500"`
	Priority    Priority  `validate:"required,oneof=low medium high critical"`
	Notes       *string   `validate:"omitempty,max=2000"`
}

type RequestClaim struct {
	RequestID        uuid.UUID
	DriverID         uuid.UUID
	Location         string
	EstimatedArrival time.Time
}

type RequestAdvance struct {
	RequestID  uuid.UUID
	DriverID   uuid.UUID
	NextStatus RequestStatus
	Location   *string
}

type RequestCancel struct {
	RequestID uuid.UUID
	ActorID   uuid.UUID
	Reason    *string
}

// StatusTransition условная запись перехода: применяется, только если заявка всё ещё
// в статусе From (и у неё водитель DriverID, если он задан).
type StatusTransition struct {
	RequestID          uuid.UUID
	From               RequestStatus
	To                 RequestStatus
	DriverID           *uuid.UUID
	Location           *string
	CancellationReason *string
}

type LocationUpdate struct {
	RequestID uuid.UUID
	Location  string
	Latitude  *float64
	Longitude *float64
}

type RequestOrder int

const (
	OldestFirst RequestOrder = iota
	NewestFirst
)

type TransportRequestFilter struct {
	RequesterID    *uuid.UUID
	DriverID       *uuid.UUID
	Statuses       []RequestStatus
	OnlyUnassigned bool
	Order          RequestOrder
	Limit          uint64
}

// PendingBacklog сводка по заявкам, ожидающим водителя.
type PendingBacklog struct {
	Count         int64
	OldestCreated *time.Time
}
