// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package main

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/travelcompanion/internal/client"
	"github.com/tomtom215/travelcompanion/internal/config"
	"github.com/tomtom215/travelcompanion/internal/geolocation"
	"github.com/tomtom215/travelcompanion/internal/logging"
	"github.com/tomtom215/travelcompanion/internal/network"
	"github.com/tomtom215/travelcompanion/internal/provider"
	"github.com/tomtom215/travelcompanion/internal/supervisor"
	"github.com/tomtom215/travelcompanion/internal/supervisor/services"
	"github.com/tomtom215/travelcompanion/internal/tracker"
)

const networkPollInterval = 30 * time.Second

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

	source, err := geolocation.NewSource(cfg.Geolocation)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create position source")
	}
	sourceName := config.SourceNone
	if source != nil {
		sourceName = source.Name()
	}
	logging.Info().
		Str("api", cfg.Client.APIBaseURL).
		Str("source", sourceName).
		Str("output", cfg.Client.OutputDir).
		Dur("sync_interval", cfg.Client.SyncInterval).
		Bool("enable_logging", cfg.App.EnableLogging).
		Msg("Configuration loaded")

	state := tracker.NewAppState()

	sampler := geolocation.NewSampler(source, geolocation.OptionsFromConfig(cfg.Geolocation))
	sampler.OnChange(state.ApplySampler)

	api := client.New(cfg.Client.APIBaseURL, cfg.Client.RequestTimeout)
	syncTask := tracker.NewSyncTask(api, state, cfg.Client.SyncInterval)
	controller := tracker.NewController(state, sampler, syncTask)
	syncTask.SetLogging(cfg.App.EnableLogging)
	controller.SetLogging(cfg.App.EnableLogging)

	writer := tracker.NewSnapshotWriter(state, cfg.Client.OutputDir, cfg.Client.SnapshotInterval)
	enricher := tracker.NewEnricher(state,
		provider.NewMockWeather(cfg.Providers.WeatherLatency),
		provider.NewMockNearby(cfg.Providers.NearbyLatency),
		cfg.Client.SyncInterval,
	)
	enricher.SetLogging(cfg.App.EnableLogging)
	monitor := network.NewMonitor()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		Name: "travelcompanion-tracker",
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cmds := watchSignals(ctx, cancel)

	tree.AddDataService(services.NewRunnerService("tracking-control", func(ctx context.Context) error {
		return controller.Run(ctx, cfg.Client.TrackOnStart, cmds)
	}))
	tree.AddDataService(services.NewRunnerService("network-monitor", func(ctx context.Context) error {
		logger := logging.WithComponent("network")
		monitor.Poll(ctx, networkPollInterval, state.SetNetwork, func(err error) {
			logger.Warn().Err(err).Msg("Network lookup failed")
		})
		return ctx.Err()
	}))
	tree.AddWorkerService(services.NewSyncService(syncTask))
	tree.AddWorkerService(services.NewRunnerService("enrich", enricher.Run))
	tree.AddWorkerService(services.NewRunnerService("snapshot", writer.Run))

	if err := <-tree.ServeBackground(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	// Services are down; nothing else mutates the state now.
	if err := writer.Write(); err != nil {
		logging.Error().Err(err).Msg("Final snapshot failed")
	}
	logging.Info().Str("output", writer.Dir()).Msg("Stopped")
}
