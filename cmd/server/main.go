package main

import (
	"context"
	"fmt"

	"github.com/avoronov/go-library-api/internal/config"
	httphandler "github.com/avoronov/go-library-api/internal/handler/http"
	"github.com/avoronov/go-library-api/internal/logger"
	"github.com/avoronov/go-library-api/internal/server"
	"github.com/avoronov/go-library-api/internal/service"
	"github.com/avoronov/go-library-api/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("library-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	if err = storages.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	if err = store.Seed(ctx, storages, cfg.Seed, log); err != nil {
		log.Fatal().Err(err).Msg("error seeding storage")
	}

	services, err := service.NewServices(cfg.App, storages, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handler := httphandler.NewHandler(services, storages, log)

	srv, err := server.NewServer(handler.InitRoutes(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
