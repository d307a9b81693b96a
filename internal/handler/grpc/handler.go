// Package grpc exposes the gRPC side of go-matjip: the standard
// grpc.health.v1.Health service that orchestrators poll for server health.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-matjip/internal/logger"
)

// ServiceName is the health service name reported next to the overall ("")
// status.
const ServiceName = "matjip.Reviews"

// Handler is the root gRPC transport handler.
//
// It owns the health server and flips its status as the process moves
// through startup and shutdown.
type Handler struct {
	health *health.Server
	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose services start as NOT_SERVING
// until [Handler.MarkServing] is called.
func NewHandler(logger *logger.Logger) *Handler {
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health: hs,
		logger: logger,
	}
}

// Register attaches every gRPC service of the handler to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// MarkServing reports the server as ready.
func (h *Handler) MarkServing() {
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	h.logger.Info().Msg("gRPC health is SERVING")
}

// Shutdown reports NOT_SERVING to every watcher and ignores later status
// updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
	h.logger.Info().Msg("gRPC health is NOT_SERVING")
}
