// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-api-scaffold/internal/config"
	"github.com/MKhiriev/go-api-scaffold/internal/handler"
	"github.com/MKhiriev/go-api-scaffold/internal/logger"
	"github.com/MKhiriev/go-api-scaffold/internal/server"
	"github.com/MKhiriev/go-api-scaffold/internal/service"
	"github.com/MKhiriev/go-api-scaffold/internal/store"
	"github.com/MKhiriev/go-api-scaffold/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const dbConnectTimeout = 10 * time.Second

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("api-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("api-server",
		logger.WithDebug(cfg.App.Debug),
		logger.WithLogDir(cfg.App.LogDir),
	)
	defer log.Close()

	log.Info().
		Str("project", cfg.App.ProjectName).
		Str("version", cfg.App.Version).
		Str("environment", cfg.App.Environment).
		Msg("starting application")

	db, err := openDB(cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error initialising database")
	}
	if db != nil {
		defer func() {
			if err := db.Close(); err != nil {
				log.Err(err).Msg("error closing database")
			}
		}()
	}

	services, err := service.NewServices(store.NewStorages(db, log), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
	log.Info().Msg("shutting down application")
}

// openDB connects and migrates the database when a DSN is configured.
// Without a DSN it returns nil and the application runs without storage.
func openDB(cfg config.DB, log *logger.Logger) (*store.DB, error) {
	if cfg.DSN == "" {
		log.Warn().Msg("no database configured")
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
	defer cancel()

	db, err := store.Open(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return db, nil
}
