// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command server launches the voice dashboard: it binds PORT (default 5001)
// on all interfaces and serves the dashboard pages and JSON API.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/voice-dashboard/internal/adapter"
	"github.com/MKhiriev/voice-dashboard/internal/config"
	"github.com/MKhiriev/voice-dashboard/internal/handler"
	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/internal/server"
	"github.com/MKhiriev/voice-dashboard/internal/service"
	"github.com/MKhiriev/voice-dashboard/internal/store"
	"github.com/MKhiriev/voice-dashboard/internal/utils"
	"github.com/MKhiriev/voice-dashboard/internal/workers"
	"github.com/MKhiriev/voice-dashboard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("voice-dashboard", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("voice-dashboard", cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	// the settings file is shared with the agent process; values it holds
	// become process env so os.Getenv fallbacks see them too
	if err = godotenv.Load(cfg.App.SettingsFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Str("file", cfg.App.SettingsFile).Msg("error loading settings file")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	dispatcher := adapter.NewLiveKitAdapter(cfg.Adapter, log)

	services, err := service.NewServices(storages, dispatcher, cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, storages.Ping, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bgWorkers, err := workers.NewWorkers(services, cfg.Workers, utils.NewHTTPClient(cfg.Adapter.RequestTimeout), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating workers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workersCtx, stopWorkers := context.WithCancel(ctx)
	workersDone := make(chan error, 1)
	go func() { workersDone <- bgWorkers.Run(workersCtx) }()

	// blocks until SIGTERM, SIGINT or SIGQUIT
	srv.RunServer()

	stopWorkers()
	select {
	case err = <-workersDone:
		if err != nil {
			log.Warn().Err(err).Msg("error stopping workers")
		}
	case <-time.After(cfg.Server.ShutdownTimeout):
		log.Warn().Msg("workers did not stop in time")
	}
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
