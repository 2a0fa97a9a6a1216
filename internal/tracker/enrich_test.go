// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package tracker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/tomtom215/travelcompanion/internal/models"
)

type countingWeather struct {
	calls atomic.Int64
	err   error
}

func (c *countingWeather) FetchWeather(context.Context, float64, float64) (models.WeatherData, error) {
	c.calls.Add(1)
	if c.err != nil {
		return models.WeatherData{}, c.err
	}
	return models.WeatherData{Temperature: 21, Condition: "sunny"}, nil
}

type countingNearby struct {
	calls atomic.Int64
}

func (c *countingNearby) FetchNearby(context.Context, float64, float64) ([]models.Suggestion, error) {
	c.calls.Add(1)
	return []models.Suggestion{{ID: "1", Name: "Cafe"}}, nil
}

func TestEnricher_RefetchesOnlyAfterMoving(t *testing.T) {
	t.Parallel()

	state := NewAppState()
	w, n := &countingWeather{}, &countingNearby{}
	e := NewEnricher(state, w, n, 0)
	ctx := context.Background()

	if e.Refresh(ctx) {
		t.Fatal("no fetch without a live sample")
	}

	withSample(state, 40.7829, -73.9654, 1)
	if !e.Refresh(ctx) {
		t.Fatal("first sample should fetch")
	}
	v := state.View()
	if v.Weather == nil || v.Weather.Temperature != 21 || len(v.Suggestions) != 1 {
		t.Fatalf("enrichment not applied: %+v %+v", v.Weather, v.Suggestions)
	}

	withSample(state, 40.78291, -73.96541, 2)
	if e.Refresh(ctx) {
		t.Error("jitter below the duplicate threshold should not refetch")
	}

	withSample(state, 40.80, -73.9654, 3)
	if !e.Refresh(ctx) {
		t.Error("moving should refetch")
	}
	if w.calls.Load() != 2 || n.calls.Load() != 2 {
		t.Errorf("calls weather=%d nearby=%d, want 2 each", w.calls.Load(), n.calls.Load())
	}
}

func TestEnricher_FailureKeepsOldValues(t *testing.T) {
	t.Parallel()

	state := NewAppState()
	w := &countingWeather{}
	e := NewEnricher(state, w, &countingNearby{}, 0)

	withSample(state, 1, 1, 1)
	e.Refresh(context.Background())

	w.err = errors.New("provider down")
	withSample(state, 2, 2, 2)
	e.Refresh(context.Background())

	if v := state.View(); v.Weather == nil || v.Weather.Temperature != 21 {
		t.Errorf("weather should survive a failed refresh: %+v", v.Weather)
	}
}
