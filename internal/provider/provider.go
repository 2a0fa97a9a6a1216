// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

// Package provider supplies weather and nearby-place data for the current
// position. Both implementations are simulated: they wait a configurable
// latency and return generated or fixed data.
package provider

import (
	"context"
	"time"

	"github.com/tomtom215/travelcompanion/internal/models"
)

// WeatherProvider returns the weather at a coordinate.
type WeatherProvider interface {
	FetchWeather(ctx context.Context, lat, lng float64) (models.WeatherData, error)
}

// NearbyProvider returns places of interest around a coordinate.
type NearbyProvider interface {
	FetchNearby(ctx context.Context, lat, lng float64) ([]models.Suggestion, error)
}

// wait sleeps for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
