package server

import (
	"fmt"
	"log/slog"

	"irc-bridge/contract"
	"irc-bridge/domain"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

var _ contract.StateListener = (*HealthReporter)(nil)

// HealthReporter mirrors session states into the standard gRPC health service.
// Each session is exposed as the service "{user}/{network}", SERVING only while online.
// The empty service name reports the bridge process itself.
type HealthReporter struct {
	health *health.Server
	log    *slog.Logger
}

func NewHealthReporter(log *slog.Logger) *HealthReporter {
	return &HealthReporter{health: health.NewServer(), log: log}
}

func ServiceName(user domain.UserID, network domain.NetworkID) string {
	return fmt.Sprintf("%s/%s", user, network)
}

func (h *HealthReporter) SessionStateChanged(user domain.UserID, network domain.NetworkID, state domain.SessionState) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if state == domain.Online {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.log.Debug("Session state changed", "user", user, "network", network, "state", state.String())
	h.health.SetServingStatus(ServiceName(user, network), status)
}

func (h *HealthReporter) Server() healthpb.HealthServer {
	return h.health
}

// Shutdown flips every service to NOT_SERVING, watchers included.
func (h *HealthReporter) Shutdown() {
	h.health.Shutdown()
}
