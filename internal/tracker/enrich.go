// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package tracker

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/travelcompanion/internal/logging"
	"github.com/tomtom215/travelcompanion/internal/models"
	"github.com/tomtom215/travelcompanion/internal/provider"
)

// Enricher fetches weather and nearby places for the live position. It
// refetches only after the position moves.
type Enricher struct {
	state    *AppState
	weather  provider.WeatherProvider
	nearby   provider.NearbyProvider
	interval time.Duration
	logger   zerolog.Logger

	last *models.LocationRecord
}

// NewEnricher creates an enricher that checks the position every interval.
func NewEnricher(state *AppState, weather provider.WeatherProvider, nearby provider.NearbyProvider, interval time.Duration) *Enricher {
	return &Enricher{
		state:    state,
		weather:  weather,
		nearby:   nearby,
		interval: interval,
		logger:   logging.WithComponent("enrich"),
	}
}

// SetLogging switches the enricher's log output. Call before Run.
func (e *Enricher) SetLogging(enabled bool) {
	e.logger = logging.WithComponentEnabled("enrich", enabled)
}

// Refresh fetches both providers concurrently when there is a live sample
// that differs from the last one fetched for. It reports whether a fetch
// was attempted. Provider failures are logged; the old values are kept.
func (e *Enricher) Refresh(ctx context.Context) bool {
	cur := e.state.Current()
	if cur == nil {
		return false
	}
	here := models.LocationRecord{Latitude: cur.Latitude, Longitude: cur.Longitude}
	if e.last != nil && IsDuplicate([]models.LocationRecord{*e.last}, here) {
		return false
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		w, err := e.weather.FetchWeather(ctx, cur.Latitude, cur.Longitude)
		if err != nil {
			if ctx.Err() == nil {
				e.logger.Warn().Err(err).Msg("Failed to fetch weather data")
			}
			return
		}
		e.state.SetWeather(w)
	}()
	go func() {
		defer wg.Done()
		list, err := e.nearby.FetchNearby(ctx, cur.Latitude, cur.Longitude)
		if err != nil {
			if ctx.Err() == nil {
				e.logger.Warn().Err(err).Msg("Failed to fetch suggestions")
			}
			return
		}
		e.state.SetSuggestions(list)
	}()
	wg.Wait()

	if ctx.Err() == nil {
		e.last = &here
	}
	return true
}

// Run calls Refresh every interval until ctx is cancelled.
func (e *Enricher) Run(ctx context.Context) error {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()
	for {
		e.Refresh(ctx)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
