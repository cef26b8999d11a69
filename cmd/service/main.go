package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "dispatch/internal/app"
	"dispatch/internal/handlers/rest/driver_availability_put"
	"dispatch/internal/handlers/rest/driver_get"
	"dispatch/internal/handlers/rest/driver_location_put"
	"dispatch/internal/handlers/rest/driver_pending_requests_get"
	"dispatch/internal/handlers/rest/driver_post"
	"dispatch/internal/handlers/rest/driver_put"
	"dispatch/internal/handlers/rest/drivers_get"
	"dispatch/internal/handlers/rest/healthcheck_head"
	"dispatch/internal/handlers/rest/ping_get"
	"dispatch/internal/handlers/rest/request_advance_post"
	"dispatch/internal/handlers/rest/request_cancel_post"
	"dispatch/internal/handlers/rest/request_claim_post"
	"dispatch/internal/handlers/rest/request_get"
	"dispatch/internal/handlers/rest/request_location_put"
	"dispatch/internal/handlers/rest/request_post"
	"dispatch/internal/handlers/rest/request_watch_get"
	"dispatch/internal/handlers/rest/requester_active_request_get"
	"dispatch/internal/handlers/rest/requests_get"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/dotenv"
	"dispatch/internal/pkg/grpchealth"
	metrics_system "dispatch/internal/pkg/metrics"
	"dispatch/internal/pkg/middlewares/graceful_shutdown"
	"dispatch/internal/pkg/middlewares/metrics"
	"dispatch/internal/pkg/middlewares/rate_limiter"
	"dispatch/internal/pkg/middlewares/request_id"
	"dispatch/internal/pkg/middlewares/timeout"
	"dispatch/internal/pkg/migrations"
	"dispatch/internal/pkg/postgres"
	"dispatch/pkg/logger"
	"dispatch/pkg/logger/zap_adapter"
	"dispatch/pkg/token_bucket"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	loaded, err := dotenv.Load(".env")
	if err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}
	if err := dotenv.ApplyFlags("service", os.Args[1:]); err != nil {
		stdlog.Fatalf("failed to parse flags: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.LogLevel)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With(logger.NewField("component", "main"))

	mainLog.Info("starting dispatch application")
	if !loaded {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // shutdownCtx и ongoingCtx наследуются от context.Background() намеренно
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With(logger.NewField("component", "run"))

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrationsAutoApply {
		if err := migrations.Up(ctx, log, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx, metrics_system.DefaultCollectInterval)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, pool, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		// watch держит соединение до TRACKING_MAX_WAIT
		WriteTimeout: cfg.Tracking.MaxWait + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// gRPC health
	healthServer, err := grpchealth.New(log, cfg.Server.GRPCHealthPort)
	if err != nil {
		return fmt.Errorf("gRPC health: %w", err)
	}

	healthServerErr := make(chan error, 1)
	go func() {
		defer close(healthServerErr)
		if err := healthServer.Serve(); err != nil {
			healthServerErr <- err
		}
	}()
	// gRPC health

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, pool),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-healthServerErr:
		return fmt.Errorf("gRPC health server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)
	healthServer.SetNotServing()

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	healthServer.Stop(shutdownCtx)
	stopOngoingGracefully()

	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()
	runLog.Info("background workers stopped")

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	db healthcheck_head.Pinger,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(request_id.Middleware())

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/driver", driver_post.New(log, app.ServiceDriver)).Methods("POST")
	router.Handle("/driver", driver_put.New(log, app.ServiceDriver)).Methods("PUT")
	router.Handle("/driver/{id}", driver_get.New(log, app.ServiceDriver)).Methods("GET")
	router.Handle("/drivers", drivers_get.New(log, app.DriverDirectory)).Methods("GET")
	router.Handle("/driver/{id}/availability", driver_availability_put.New(log, app.ServiceMatching)).Methods("PUT")
	router.Handle("/driver/{id}/location", driver_location_put.New(log, app.ServiceMatching)).Methods("PUT")
	router.Handle("/driver/{id}/pending-requests", driver_pending_requests_get.New(log, app.ServiceMatching)).Methods("GET")

	router.Handle("/request", request_post.New(log, app.ServiceDispatch)).Methods("POST")
	router.Handle("/request/{id}", request_get.New(log, app.ServiceDispatch)).Methods("GET")
	router.Handle("/request/{id}/watch", request_watch_get.New(log, app.ServiceTracking)).Methods("GET")
	router.Handle("/requests", requests_get.New(log, app.ServiceDispatch)).Methods("GET")
	router.Handle("/requester/{id}/active-request", requester_active_request_get.New(log, app.ServiceDispatch)).Methods("GET")
	router.Handle("/request/{id}/claim", request_claim_post.New(log, app.ServiceDispatch)).Methods("POST")
	router.Handle("/request/{id}/advance", request_advance_post.New(log, app.ServiceDispatch)).Methods("POST")
	router.Handle("/request/{id}/cancel", request_cancel_post.New(log, app.ServiceDispatch)).Methods("POST")
	router.Handle("/request/{id}/location", request_location_put.New(log, app.ServiceMatching)).Methods("PUT")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, db healthcheck_head.Pinger) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
