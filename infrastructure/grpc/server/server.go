package server

import (
	"log/slog"

	sdkgrpc "github.com/mama165/sdk-go/grpc"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// NewServer builds the control plane server: health checks per session and reflection
// so grpcurl can discover it.
func NewServer(log *slog.Logger, reporter *HealthReporter) *grpc.Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			sdkgrpc.UnaryLoggingInterceptor(log),
		))
	healthpb.RegisterHealthServer(s, reporter.Server())
	reflection.Register(s)
	return s
}
