// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command healthcheck probes GET /health of a running API and exits non-zero
// when the probe fails. It is meant for container HEALTHCHECK directives.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/MKhiriev/go-api-scaffold/internal/adapter"
	"github.com/MKhiriev/go-api-scaffold/internal/logger"
)

const statusHealthy = "healthy"

func main() {
	address := flag.String("a", "127.0.0.1:8000", "address of the API")
	timeout := flag.Duration("t", 5*time.Second, "probe timeout")
	flag.Parse()

	log := logger.NewLogger("healthcheck")

	client, err := adapter.NewHTTPAPIClient(*address, "", *timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating API client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	health, err := client.Health(ctx)
	if err != nil {
		log.Error().Err(err).Str("address", *address).Msg("health probe failed")
		os.Exit(1)
	}
	if health.Status != statusHealthy {
		log.Error().Str("status", health.Status).Msg("API is not healthy")
		os.Exit(1)
	}

	log.Info().Str("version", health.Version).Msg("API is healthy")
}
