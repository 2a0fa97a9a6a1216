// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/tomtom215/travelcompanion/docs" // swagger document
	"github.com/tomtom215/travelcompanion/internal/api"
	"github.com/tomtom215/travelcompanion/internal/config"
	"github.com/tomtom215/travelcompanion/internal/logging"
	"github.com/tomtom215/travelcompanion/internal/store"
	"github.com/tomtom215/travelcompanion/internal/supervisor"
	"github.com/tomtom215/travelcompanion/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Str("backend", cfg.Storage.Backend).
		Str("data_path", cfg.Storage.DataPath).
		Bool("dev_mode", cfg.App.DevMode).
		Msg("Configuration loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := store.Open(ctx, cfg.Storage)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open location store")
	}
	defer func() {
		if err := st.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing location store")
		}
	}()
	logging.Info().Str("backend", cfg.Storage.Backend).Msg("Location store ready")

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		Name:            "travelcompanion-server",
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	router := api.NewRouter(api.NewHandler(st), cfg)
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Setup(),
		ReadHeaderTimeout: cfg.Server.Timeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().
		Str("addr", server.Addr).
		Str("base_path", cfg.Server.BasePath).
		Bool("swagger", cfg.Server.EnableSwagger).
		Bool("metrics", cfg.Server.EnableMetrics).
		Msg("Starting HTTP server")

	run(ctx, tree)
}

// run serves tree until ctx is cancelled and reports services that did not
// stop in time.
func run(ctx context.Context, tree *supervisor.SupervisorTree) {
	if err := <-tree.ServeBackground(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}
	logging.Info().Msg("Stopped")
}
