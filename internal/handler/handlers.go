// Package handler builds the transport handlers enabled by the server
// configuration.
package handler

import (
	nethttp "net/http"

	"github.com/MKhiriev/go-matjip/internal/config"
	"github.com/MKhiriev/go-matjip/internal/handler/grpc"
	"github.com/MKhiriev/go-matjip/internal/handler/http"
	"github.com/MKhiriev/go-matjip/internal/logger"
	"github.com/MKhiriev/go-matjip/internal/service"
)

// Handlers holds one handler per enabled transport. A nil field means the
// transport is disabled.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates the HTTP handler when cfg.Server.HTTPAddress is set
// and the gRPC health handler when cfg.Server.GRPCAddress is set.
// metricsHandler is mounted at /metrics and may be nil.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, metricsHandler nethttp.Handler, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, metricsHandler, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
