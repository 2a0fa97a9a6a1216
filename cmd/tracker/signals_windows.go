// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/tomtom215/travelcompanion/internal/logging"
	"github.com/tomtom215/travelcompanion/internal/tracker"
)

// watchSignals cancels on interrupt. There are no user signals on
// Windows, so the command channel stays empty.
func watchSignals(ctx context.Context, cancel context.CancelFunc) <-chan tracker.Command {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		defer signal.Stop(sigCh)
		select {
		case <-ctx.Done():
		case <-sigCh:
			logging.Info().Msg("Received shutdown signal")
			cancel()
		}
	}()
	return make(chan tracker.Command)
}
