// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package geolocation

import (
	"context"
	"time"
)

// Position is one raw fix as reported by a Source.
type Position struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64 // meters

	// Speed is meters per second, nil when the source does not report it.
	Speed *float64

	// Heading is degrees clockwise from north, nil when unknown.
	Heading *float64

	Timestamp time.Time
}

// Options are passed to Source.Watch.
type Options struct {
	// Timeout bounds the wait for the first fix.
	Timeout time.Duration

	HighAccuracy bool

	// MaximumAge is the oldest cached fix a source may report. 0 means
	// every fix must be fresh.
	MaximumAge time.Duration
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{Timeout: 15 * time.Second, HighAccuracy: true}
}

// Source pushes fixes until ctx is cancelled.
//
// Watch blocks. It returns nil when ctx is cancelled and a non-nil error
// when the source fails; every failure ends the session. Sends on fixes
// must select on ctx.Done so that Watch never blocks past cancellation.
type Source interface {
	Name() string
	Watch(ctx context.Context, opts Options, fixes chan<- Position) error
}

// send delivers p unless ctx is done first.
func send(ctx context.Context, fixes chan<- Position, p Position) bool {
	select {
	case fixes <- p:
		return true
	case <-ctx.Done():
		return false
	}
}
