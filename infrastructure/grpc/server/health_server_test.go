package server

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"irc-bridge/domain"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

func check(t *testing.T, reporter *HealthReporter, service string) (healthpb.HealthCheckResponse_ServingStatus, error) {
	t.Helper()
	resp, err := reporter.Server().Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, err
	}
	return resp.GetStatus(), nil
}

func TestHealthReporter_Follows_Session_State(t *testing.T) {
	req := require.New(t)
	reporter := NewHealthReporter(slog.New(slog.NewTextHandler(io.Discard, nil)))
	service := ServiceName("alice", "irc.libera.chat")
	req.Equal("alice/irc.libera.chat", service)

	// Given a session never reported
	_, err := check(t, reporter, service)
	req.Equal(codes.NotFound, status.Code(err))

	// When it connects then signs on
	reporter.SessionStateChanged("alice", "irc.libera.chat", domain.Connecting)
	got, err := check(t, reporter, service)
	req.NoError(err)
	req.Equal(healthpb.HealthCheckResponse_NOT_SERVING, got)

	reporter.SessionStateChanged("alice", "irc.libera.chat", domain.Online)
	got, err = check(t, reporter, service)
	req.NoError(err)
	req.Equal(healthpb.HealthCheckResponse_SERVING, got)

	// Then losing the link stops serving
	reporter.SessionStateChanged("alice", "irc.libera.chat", domain.Reconnecting)
	got, err = check(t, reporter, service)
	req.NoError(err)
	req.Equal(healthpb.HealthCheckResponse_NOT_SERVING, got)
}

func TestHealthReporter_Shutdown(t *testing.T) {
	req := require.New(t)
	reporter := NewHealthReporter(slog.New(slog.NewTextHandler(io.Discard, nil)))
	reporter.SessionStateChanged("alice", "irc.libera.chat", domain.Online)

	reporter.Shutdown()

	got, err := check(t, reporter, "")
	req.NoError(err)
	req.Equal(healthpb.HealthCheckResponse_NOT_SERVING, got)
	got, err = check(t, reporter, ServiceName("alice", "irc.libera.chat"))
	req.NoError(err)
	req.Equal(healthpb.HealthCheckResponse_NOT_SERVING, got)
}

func TestNewServer_Registers_Health_And_Reflection(t *testing.T) {
	req := require.New(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := NewServer(logger, NewHealthReporter(logger))
	defer s.Stop()

	info := s.GetServiceInfo()
	req.Contains(info, "grpc.health.v1.Health")
	req.Contains(info, "grpc.reflection.v1.ServerReflection")
}
