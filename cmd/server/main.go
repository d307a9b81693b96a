package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-matjip/internal/config"
	"github.com/MKhiriev/go-matjip/internal/handler"
	"github.com/MKhiriev/go-matjip/internal/logger"
	"github.com/MKhiriev/go-matjip/internal/metrics"
	"github.com/MKhiriev/go-matjip/internal/server"
	"github.com/MKhiriev/go-matjip/internal/service"
	"github.com/MKhiriev/go-matjip/internal/store"
	"github.com/MKhiriev/go-matjip/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()
	log := logger.NewLogger("go-matjip-server")

	if err := run(log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// run loads the configuration and serves until a stop signal arrives.
func run(log *logger.Logger) error {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("error setting log level: %w", err)
	}

	log.Debug().Str("http", cfg.Server.HTTPAddress).Str("grpc", cfg.Server.GRPCAddress).Msg("received configs")

	return serve(context.Background(), cfg, buildInfo, log)
}

// serve wires storages, services and transports from cfg. Storages are
// closed on every return path.
func serve(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg, buildInfo, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	registry := metrics.NewRegistry()
	handlers, err := handler.NewHandlers(services, cfg, metrics.Handler(registry), log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	srv.RunServer()
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
