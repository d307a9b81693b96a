package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-matjip/internal/config"
	"github.com/MKhiriev/go-matjip/internal/logger"
	"github.com/MKhiriev/go-matjip/internal/service"
)

// multipartOverhead is the allowance on top of the icon size for multipart
// boundaries and part headers.
const multipartOverhead = 64 << 10

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	maxUploadSize  int64

	// iconDir is served under /static/icons when icons are kept on local
	// disk. Empty when the S3 store is used.
	iconDir string

	// metrics serves /metrics; nil disables the route.
	metrics http.Handler

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, metrics http.Handler, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		services:       services,
		requestTimeout: cfg.Server.RequestTimeout,
		maxUploadSize:  cfg.Server.MaxUploadSize,
		metrics:        metrics,
		logger:         logger,
	}
	if !cfg.Storage.UseS3() {
		h.iconDir = cfg.Storage.Files.IconDir
	}

	return h
}
