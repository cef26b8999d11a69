package grpchealth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"dispatch/pkg/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
)

const (
	KeepaliveTime    = 5 * time.Minute
	KeepaliveTimeout = 3 * time.Second
)

// Server отдаёт grpc.health.v1.Health для оркестратора. Статус общий для всего процесса.
type Server struct {
	grpcServer *grpc.Server
	health     *health.Server
	listener   net.Listener
	log        logger.Logger
}

func New(log logger.Logger, port string) (*Server, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", port))
	if err != nil {
		return nil, fmt.Errorf("listen gRPC health port %s: %w", port, err)
	}

	grpcServer := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    KeepaliveTime,
			Timeout: KeepaliveTimeout,
		}),
	)
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	return &Server{
		grpcServer: grpcServer,
		health:     healthServer,
		listener:   listener,
		log: log.With(
			logger.NewField("component", "grpc-health"),
			logger.NewField("port", port),
		),
	}, nil
}

func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Serve блокируется до Stop.
func (s *Server) Serve() error {
	s.log.Info("gRPC health server starting")

	err := s.grpcServer.Serve(s.listener)
	if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC health server: %w", err)
	}

	return nil
}

// SetNotServing переводит все сервисы в NOT_SERVING. Вызывается в начале остановки.
func (s *Server) SetNotServing() {
	s.health.Shutdown()
	s.log.Info("gRPC health status set to NOT_SERVING")
}

// Stop ждёт завершения открытых вызовов, пока не истечёт ctx.
func (s *Server) Stop(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.grpcServer.GracefulStop()
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.log.Warn("gRPC health graceful stop timed out, forcing")
		s.grpcServer.Stop()
		<-done
	}
}
