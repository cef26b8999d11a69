//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"dispatch/internal/handlers/rest/driver_availability_put"
	"dispatch/internal/handlers/rest/driver_get"
	"dispatch/internal/handlers/rest/driver_location_put"
	"dispatch/internal/handlers/rest/driver_pending_requests_get"
	"dispatch/internal/handlers/rest/driver_post"
	"dispatch/internal/handlers/rest/driver_put"
	"dispatch/internal/handlers/rest/drivers_get"
	"dispatch/internal/handlers/rest/request_advance_post"
	"dispatch/internal/handlers/rest/request_cancel_post"
	"dispatch/internal/handlers/rest/request_claim_post"
	"dispatch/internal/handlers/rest/request_get"
	"dispatch/internal/handlers/rest/request_location_put"
	"dispatch/internal/handlers/rest/request_post"
	"dispatch/internal/handlers/rest/request_watch_get"
	"dispatch/internal/handlers/rest/requester_active_request_get"
	"dispatch/internal/handlers/rest/requests_get"
	"dispatch/internal/handlers/tasks/pending_backlog"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/arrival_estimate"
	"dispatch/internal/pkg/factory/telemetry_handle"

	driverRepo "dispatch/internal/repository/driver"
	requestRepo "dispatch/internal/repository/transport_request"
	dispatchService "dispatch/internal/service/dispatch"
	driverService "dispatch/internal/service/driver"
	matchingService "dispatch/internal/service/matching"
	telemetryService "dispatch/internal/service/telemetry"
	trackingService "dispatch/internal/service/tracking"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	PendingBacklogInterval time.Duration
)

type Application struct {
	ServiceDriver     ServiceDriver
	ServiceDispatch   ServiceDispatch
	ServiceMatching   ServiceMatching
	ServiceTracking   ServiceTracking
	DriverDirectory   *DriverDirectory
	BackgroundWorkers *background.Worker
}

type ServiceDriver interface {
	driver_post.Service
	driver_put.Service
	driver_get.Service
}

type ServiceDispatch interface {
	request_post.Service
	request_get.Service
	requests_get.Service
	requester_active_request_get.Service
	request_claim_post.Service
	request_advance_post.Service
	request_cancel_post.Service
}

type ServiceMatching interface {
	driver_availability_put.Service
	driver_location_put.Service
	driver_pending_requests_get.Service
	request_location_put.Service
}

type ServiceTracking interface {
	request_watch_get.Service
}

// DriverDirectory список водителей: полный из реестра, готовых из матчинга.
type DriverDirectory struct {
	*driverService.Driver
	*matchingService.Matching
}

var _ drivers_get.Service = (*DriverDirectory)(nil)

var serviceSet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideDriverRepository,
	provideRequestRepository,

	provideServiceDriver,
	provideServiceDispatch,
	provideServiceMatching,
	arrival_estimate.New,

	wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
	wire.Bind(new(dispatchService.Repository), new(*requestRepo.Repository)),
	wire.Bind(new(dispatchService.DriverService), new(*driverService.Driver)),
	wire.Bind(new(dispatchService.ArrivalEstimator), new(*arrival_estimate.ArrivalEstimateFactory)),
	wire.Bind(new(matchingService.Repository), new(*requestRepo.Repository)),
	wire.Bind(new(matchingService.DriverService), new(*driverService.Driver)),
	wire.Bind(new(matchingService.TxManager), new(*tx.Manager)),
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		serviceSet,

		provideServiceTracking,
		providePendingBacklogInterval,
		providePendingBacklogTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(DriverDirectory), "*"),
		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDriver), new(*driverService.Driver)),
		wire.Bind(new(ServiceDispatch), new(*dispatchService.Dispatch)),
		wire.Bind(new(ServiceMatching), new(*matchingService.Matching)),
		wire.Bind(new(ServiceTracking), new(*trackingService.Tracking)),
		wire.Bind(new(trackingService.RequestService), new(*dispatchService.Dispatch)),
		wire.Bind(new(pending_backlog.Service), new(*matchingService.Matching)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	TelemetryService *telemetryService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-driver-telemetry)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		serviceSet,

		provideTelemetryHandlerFactory,
		provideTelemetryService,

		wire.Bind(new(telemetryService.MatchingService), new(*matchingService.Matching)),
		wire.Bind(new(telemetryService.HandlerFactory), new(*telemetry_handle.TelemetryHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideRequestRepository(querier *querier.Querier) *requestRepo.Repository {
	return requestRepo.New(querier)
}

func provideServiceDriver(repository driverService.Repository) *driverService.Driver {
	return driverService.New(repository)
}

func provideServiceDispatch(
	repository dispatchService.Repository,
	drivers dispatchService.DriverService,
	estimator dispatchService.ArrivalEstimator,
) *dispatchService.Dispatch {
	return dispatchService.New(repository, drivers, estimator)
}

func provideServiceMatching(
	repository matchingService.Repository,
	drivers matchingService.DriverService,
	txManager matchingService.TxManager,
) *matchingService.Matching {
	return matchingService.New(repository, drivers, txManager)
}

func provideServiceTracking(requestService trackingService.RequestService, cfg *config.Config) *trackingService.Tracking {
	return trackingService.New(requestService, cfg.Tracking.PollInterval, cfg.Tracking.MaxWait)
}

func providePendingBacklogInterval(cfg *config.Config) PendingBacklogInterval {
	return PendingBacklogInterval(cfg.Tasks.PendingBacklogInterval)
}

func providePendingBacklogTask(
	log logger.Logger,
	service pending_backlog.Service,
	interval PendingBacklogInterval,
) *pending_backlog.PendingBacklog {
	return pending_backlog.NewPendingBacklog(log, service, time.Duration(interval))
}

func provideTaskList(
	pendingBacklogTask *pending_backlog.PendingBacklog,
) []background.Task {
	return []background.Task{
		pendingBacklogTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func provideTelemetryHandlerFactory(matching telemetryService.MatchingService) *telemetry_handle.TelemetryHandlerFactory {
	return telemetry_handle.NewTelemetryHandlerFactory(matching)
}

func provideTelemetryService(factory telemetryService.HandlerFactory) *telemetryService.Service {
	return telemetryService.New(factory)
}
