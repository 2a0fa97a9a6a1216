// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package tracker

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/tomtom215/travelcompanion/internal/geolocation"
	"github.com/tomtom215/travelcompanion/internal/logging"
)

// Command is an operator request delivered to Controller.Run.
type Command int

const (
	// CommandToggle flips tracking on or off.
	CommandToggle Command = iota
	// CommandClear deletes the stored history.
	CommandClear
)

func (c Command) String() string {
	switch c {
	case CommandToggle:
		return "toggle"
	case CommandClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Sampler is the lifecycle of geolocation.Sampler.
type Sampler interface {
	Enable(ctx context.Context) error
	Disable()
}

// Controller owns the tracking switch. Turning tracking on starts the
// position sampler; turning it off stops it. Sampler state reaches
// AppState through the sampler's change callback.
type Controller struct {
	state   *AppState
	sampler Sampler
	sync    *SyncTask
	logger  zerolog.Logger
}

// NewController creates a controller with tracking off.
func NewController(state *AppState, sampler Sampler, sync *SyncTask) *Controller {
	return &Controller{
		state:   state,
		sampler: sampler,
		sync:    sync,
		logger:  logging.WithComponent("control"),
	}
}

// SetLogging switches the controller's log output. Call before Run.
func (c *Controller) SetLogging(enabled bool) {
	c.logger = logging.WithComponentEnabled("control", enabled)
}

// SetTracking switches tracking. A sampler that cannot start leaves
// tracking on with the error shown in the state.
func (c *Controller) SetTracking(ctx context.Context, on bool) {
	if on {
		c.state.SetTracking(true)
		if err := c.sampler.Enable(ctx); err != nil && !errors.Is(err, geolocation.ErrUnsupported) {
			c.logger.Error().Err(err).Msg("Failed to start position sampler")
		}
		c.logger.Info().Msg("Tracking enabled")
		return
	}
	c.sampler.Disable()
	c.state.SetTracking(false)
	c.logger.Info().Msg("Tracking disabled")
}

// Handle applies one command.
func (c *Controller) Handle(ctx context.Context, cmd Command) {
	switch cmd {
	case CommandToggle:
		// A failed session is restarted instead of switched off.
		if c.state.Tracking() && c.state.SamplerFailed() {
			c.SetTracking(ctx, true)
			return
		}
		c.SetTracking(ctx, !c.state.Tracking())
	case CommandClear:
		if err := c.sync.ClearHistory(ctx); err != nil {
			c.logger.Error().Err(err).Msg("Failed to clear history")
		}
	default:
		c.logger.Warn().Stringer("command", cmd).Msg("Ignoring command")
	}
}

// Run applies commands until ctx is cancelled, then stops the sampler.
// Tracking starts on when trackOnStart is set.
func (c *Controller) Run(ctx context.Context, trackOnStart bool, cmds <-chan Command) error {
	if trackOnStart {
		c.SetTracking(ctx, true)
	}
	defer c.sampler.Disable()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd, ok := <-cmds:
			if !ok {
				<-ctx.Done()
				return ctx.Err()
			}
			c.Handle(ctx, cmd)
		}
	}
}
