// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package services

import (
	"context"
	"fmt"
)

// StartStopManager is the lifecycle of tracker.SyncTask.
type StartStopManager interface {
	Start(ctx context.Context) error
	Stop() error
}

// SyncService adapts a Start/Stop component to suture's Serve pattern:
// Start, wait for cancellation, then Stop. Stop blocks until the
// component's goroutines have exited.
type SyncService struct {
	manager StartStopManager
	name    string
}

// NewSyncService wraps the history sync task.
//
//	task := tracker.NewSyncTask(api, state, cfg.Client.SyncInterval)
//	tree.AddWorkerService(services.NewSyncService(task))
func NewSyncService(manager StartStopManager) *SyncService {
	return &SyncService{
		manager: manager,
		name:    "history-sync",
	}
}

// Serve implements suture.Service. A Start failure is returned so the
// supervisor retries with backoff.
func (s *SyncService) Serve(ctx context.Context) error {
	if err := s.manager.Start(ctx); err != nil {
		return fmt.Errorf("history sync start failed: %w", err)
	}

	<-ctx.Done()

	if err := s.manager.Stop(); err != nil {
		return fmt.Errorf("history sync stop failed: %w", err)
	}
	return ctx.Err()
}

// String names the service in supervisor events.
func (s *SyncService) String() string {
	return s.name
}
