// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package geolocation

import (
	"context"
	"time"
)

// StaticSource reports the same coordinates at a fixed interval.
type StaticSource struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64
	Interval  time.Duration
}

// NewStaticSource returns a source pinned to lat, lng that repeats every second.
func NewStaticSource(lat, lng float64) *StaticSource {
	return &StaticSource{Latitude: lat, Longitude: lng, Accuracy: 10, Interval: time.Second}
}

func (s *StaticSource) Name() string { return "static" }

// Watch emits immediately, then once per Interval. A non-positive interval
// emits once and then waits for cancellation.
func (s *StaticSource) Watch(ctx context.Context, _ Options, fixes chan<- Position) error {
	emit := func() bool {
		return send(ctx, fixes, Position{
			Latitude:  s.Latitude,
			Longitude: s.Longitude,
			Accuracy:  s.Accuracy,
			Timestamp: time.Now(),
		})
	}

	if !emit() {
		return nil
	}
	if s.Interval <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if !emit() {
				return nil
			}
		}
	}
}
