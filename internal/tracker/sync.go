// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

// Package tracker is the headless client of the history service. It keeps
// the application state, forwards live samples to the service on a fixed
// period and writes rendered snapshots of the trip.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/travelcompanion/internal/logging"
	"github.com/tomtom215/travelcompanion/internal/metrics"
	"github.com/tomtom215/travelcompanion/internal/models"
)

// Append outcomes, used as metric labels.
const (
	appendStored    = "stored"
	appendDuplicate = "duplicate"
	appendFailed    = "failed"
)

// HistoryAPI is the part of the history service the tracker uses.
// *client.Client satisfies it.
type HistoryAPI interface {
	Health(ctx context.Context) (models.HealthStatus, error)
	List(ctx context.Context) ([]models.LocationRecord, error)
	Append(ctx context.Context, candidate models.LocationCandidate) (models.LocationRecord, error)
	Clear(ctx context.Context) error
}

// SyncTask probes the service and forwards the live sample every interval.
//
// The first tick runs as soon as the task starts. Every tick runs in its
// own goroutine, so a slow tick never delays the next one. Stop cancels
// in-flight ticks and waits for them.
type SyncTask struct {
	api      HistoryAPI
	state    *AppState
	interval time.Duration
	logger   zerolog.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewSyncTask creates a stopped task.
func NewSyncTask(api HistoryAPI, state *AppState, interval time.Duration) *SyncTask {
	return &SyncTask{
		api:      api,
		state:    state,
		interval: interval,
		logger:   logging.WithComponent("sync"),
	}
}

// SetLogging switches the task's log output. Call before Start.
func (t *SyncTask) SetLogging(enabled bool) {
	t.logger = logging.WithComponentEnabled("sync", enabled)
}

// Start loads the history once and begins ticking.
func (t *SyncTask) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return fmt.Errorf("sync task is already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.running = true

	// Add before starting so Stop never waits on a partial count.
	t.wg.Add(2)
	go func() {
		defer t.wg.Done()
		if err := t.Reload(runCtx); err != nil && runCtx.Err() == nil {
			t.logger.Warn().Err(err).Msg("Initial history load failed")
		}
	}()
	go t.loop(runCtx)

	t.logger.Info().Dur("interval", t.interval).Msg("Sync task started")
	return nil
}

// Stop cancels the task and waits for every tick to return. No tick
// starts after Stop returns.
func (t *SyncTask) Stop() error {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return fmt.Errorf("sync task is not running")
	}
	t.running = false
	cancel := t.cancel
	t.mu.Unlock()

	cancel()
	t.wg.Wait()
	t.logger.Info().Msg("Sync task stopped")
	return nil
}

func (t *SyncTask) loop(ctx context.Context) {
	defer t.wg.Done()

	t.spawnTick(ctx)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.spawnTick(ctx)
		}
	}
}

func (t *SyncTask) spawnTick(ctx context.Context) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		t.Tick(ctx)
	}()
}

// Tick runs one probe and, when tracking with a live sample, one append.
// Failures are logged and never retried.
func (t *SyncTask) Tick(ctx context.Context) {
	connected := t.CheckHealth(ctx)
	if ctx.Err() != nil {
		return
	}

	if !t.state.Tracking() {
		return
	}
	sample := t.state.Current()
	if sample == nil {
		return
	}

	candidate := models.NewCandidate(sample.Latitude, sample.Longitude, sample.Timestamp)
	rec, err := t.api.Append(ctx, candidate)
	if err != nil {
		if ctx.Err() == nil {
			metrics.RecordSyncAppend(appendFailed)
			t.logger.Warn().Err(err).Bool("connected", connected).Msg("Saving location failed")
		}
		return
	}

	if t.state.MergeRecord(rec) {
		metrics.RecordSyncAppend(appendStored)
		t.logger.Debug().Str("id", rec.ID).Msg("Location saved")
	} else {
		metrics.RecordSyncAppend(appendDuplicate)
	}
}

// CheckHealth probes the service and records the result in the state.
func (t *SyncTask) CheckHealth(ctx context.Context) bool {
	_, err := t.api.Health(ctx)
	if err != nil && errors.Is(ctx.Err(), context.Canceled) {
		return false
	}

	connected := err == nil
	if connected {
		t.state.SetServerStatus(StatusConnected)
	} else {
		t.state.SetServerStatus(StatusDisconnected)
		t.logger.Debug().Err(err).Msg("Server health check failed")
	}
	metrics.RecordSyncTick(connected)
	return connected
}

// Reload replaces the in-memory history with the service's.
func (t *SyncTask) Reload(ctx context.Context) error {
	records, err := t.api.List(ctx)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	t.state.SetHistory(records)
	t.logger.Info().Int("count", len(records)).Msg("Location history loaded")
	return nil
}

// ClearHistory deletes the history on the service and, on success, locally.
func (t *SyncTask) ClearHistory(ctx context.Context) error {
	if err := t.api.Clear(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	t.state.ClearHistory()
	t.logger.Info().Msg("Location history cleared")
	return nil
}
