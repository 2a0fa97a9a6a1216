// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

//go:build !windows

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/travelcompanion/internal/logging"
	"github.com/tomtom215/travelcompanion/internal/tracker"
)

// watchSignals cancels on SIGINT/SIGTERM and turns SIGUSR1/SIGUSR2 into
// tracker commands.
func watchSignals(ctx context.Context, cancel context.CancelFunc) <-chan tracker.Command {
	cmds := make(chan tracker.Command, 4)
	sigCh := make(chan os.Signal, 4)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGUSR1, syscall.SIGUSR2)

	go func() {
		defer signal.Stop(sigCh)
		for {
			select {
			case <-ctx.Done():
				return
			case sig := <-sigCh:
				var cmd tracker.Command
				switch sig {
				case syscall.SIGUSR1:
					cmd = tracker.CommandToggle
				case syscall.SIGUSR2:
					cmd = tracker.CommandClear
				default:
					logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
					cancel()
					return
				}
				select {
				case cmds <- cmd:
				default:
					logging.Warn().Stringer("command", cmd).Msg("Command queue full, dropping")
				}
			}
		}
	}()
	return cmds
}
