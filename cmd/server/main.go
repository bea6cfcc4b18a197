package main

import (
	"context"

	"github.com/MKhiriev/go-panel/internal/config"
	"github.com/MKhiriev/go-panel/internal/handler"
	"github.com/MKhiriev/go-panel/internal/logger"
	"github.com/MKhiriev/go-panel/internal/server"
	"github.com/MKhiriev/go-panel/internal/service"
	"github.com/MKhiriev/go-panel/internal/store"
	"github.com/MKhiriev/go-panel/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("go-panel-server")
	log.Info().
		Str("version", build.Version).
		Str("date", build.Date).
		Str("commit", build.Commit).
		Msg("starting go-panel-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = build.Version
	}
	leveled, err := log.Leveled(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error configuring logger")
	}
	log = leveled

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
