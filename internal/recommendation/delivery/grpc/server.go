package grpc

import (
	"fmt"
	"net"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/tair/shopping-advisor/pkg/logger"
)

// ServiceName is the name reported by the health service
const ServiceName = "advisor.v1.ShoppingAdvisor"

// Server exposes the standard gRPC health service and reflection
type Server struct {
	grpc   *grpc.Server
	health *health.Server
}

// NewServer builds the gRPC server with tracing, metrics and logging
func NewServer(metrics *Metrics) *Server {
	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			LoggingInterceptor,
			metrics.MetricsInterceptor,
		),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	// Register reflection service (for grpcurl and grpc tools)
	reflection.Register(grpcServer)

	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Server{grpc: grpcServer, health: healthServer}
}

// Serve marks the service SERVING and blocks until the listener closes
func (s *Server) Serve(lis net.Listener) error {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Logger.Info().
		Str("addr", lis.Addr().String()).
		Msg("gRPC server started")

	if err := s.grpc.Serve(lis); err != nil {
		return fmt.Errorf("grpc serve: %w", err)
	}
	return nil
}

// GracefulStop reports NOT_SERVING and drains in-flight calls
func (s *Server) GracefulStop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
