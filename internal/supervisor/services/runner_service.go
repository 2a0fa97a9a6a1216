// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package services

import (
	"context"
	"errors"
	"fmt"
)

// RunFunc blocks until ctx is cancelled or the loop fails.
type RunFunc func(ctx context.Context) error

// RunnerService supervises a blocking Run loop such as
// tracker.SnapshotWriter.Run or tracker.Enricher.Run.
type RunnerService struct {
	run  RunFunc
	name string
}

// NewRunnerService wraps run under name.
func NewRunnerService(name string, run RunFunc) *RunnerService {
	return &RunnerService{run: run, name: name}
}

// Serve implements suture.Service. A loop that returns early without
// cancellation is reported as a failure so it gets restarted.
func (r *RunnerService) Serve(ctx context.Context) error {
	err := r.run(ctx)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err == nil {
		err = errors.New("exited unexpectedly")
	}
	return fmt.Errorf("%s: %w", r.name, err)
}

// String names the service in supervisor events.
func (r *RunnerService) String() string {
	return r.name
}
