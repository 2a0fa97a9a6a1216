// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package tracker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/travelcompanion/internal/logging"
	"github.com/tomtom215/travelcompanion/internal/mapview"
	"github.com/tomtom215/travelcompanion/internal/network"
	"github.com/tomtom215/travelcompanion/internal/render"
	"github.com/tomtom215/travelcompanion/internal/travel"
)

// StatusFileName is the JSON summary written next to the images.
const StatusFileName = "status.json"

// Status is the document written to status.json.
type Status struct {
	View
	Formatted      FormattedStats   `json:"formatted"`
	FunFacts       *travel.FunFacts `json:"funFacts,omitempty"`
	Direction      string           `json:"direction,omitempty"`
	NetworkQuality string           `json:"networkQuality"`
	GeneratedAt    time.Time        `json:"generatedAt"`
}

// FormattedStats are the statistics as displayed.
type FormattedStats struct {
	TotalDistance string `json:"totalDistance"`
	TotalTime     string `json:"totalTime"`
	TimeMoving    string `json:"timeMoving"`
	AverageSpeed  string `json:"averageSpeed"`
	MaxSpeed      string `json:"maxSpeed"`
	CurrentSpeed  string `json:"currentSpeed,omitempty"`
}

// NewStatus derives the status document from v.
func NewStatus(v View, now time.Time) Status {
	st := Status{
		View: v,
		Formatted: FormattedStats{
			TotalDistance: travel.FormatDistance(v.Stats.TotalDistance),
			TotalTime:     travel.FormatTime(v.Stats.TotalTime),
			TimeMoving:    travel.FormatTime(v.Stats.TimeMoving),
			AverageSpeed:  travel.FormatSpeed(v.Stats.AverageSpeed),
			MaxSpeed:      travel.FormatSpeed(v.Stats.MaxSpeed),
		},
		NetworkQuality: network.Quality(v.Network),
		GeneratedAt:    now.UTC(),
	}
	if v.Current != nil {
		st.Formatted.CurrentSpeed = travel.FormatSpeed(v.Current.Speed)
		st.Direction = travel.CardinalDirection(v.Current.Heading)
	}
	if facts, ok := travel.ComputeFunFacts(v.Stats); ok {
		st.FunFacts = &facts
	}
	return st
}

// SnapshotWriter renders the state into an output directory:
//
//	path.png         movement path
//	speedometer.png  gauge for the live sample (only when one exists)
//	map.geojson      map view
//	status.json      Status document
type SnapshotWriter struct {
	state    *AppState
	dir      string
	interval time.Duration
	now      func() time.Time
	logger   zerolog.Logger

	mu          sync.Mutex
	lastVersion uint64
	written     bool
}

// NewSnapshotWriter creates a writer for dir.
func NewSnapshotWriter(state *AppState, dir string, interval time.Duration) *SnapshotWriter {
	return &SnapshotWriter{
		state:    state,
		dir:      dir,
		interval: interval,
		now:      time.Now,
		logger:   logging.WithComponent("snapshot"),
	}
}

// Dir returns the output directory.
func (w *SnapshotWriter) Dir() string {
	return w.dir
}

// Write renders every output file from the current state. Errors from
// individual files are joined; the remaining files are still written.
func (w *SnapshotWriter) Write() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.writeLocked()
}

// WriteIfChanged writes only when the state changed since the last write.
func (w *SnapshotWriter) WriteIfChanged() (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.written && w.state.Version() == w.lastVersion {
		return false, nil
	}
	return true, w.writeLocked()
}

func (w *SnapshotWriter) writeLocked() error {
	v := w.state.View()

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", w.dir, err)
	}

	var errs []error
	if err := render.WritePathPNG(filepath.Join(w.dir, render.PathFileName), v.History); err != nil {
		errs = append(errs, err)
	}
	if v.Current != nil {
		file := filepath.Join(w.dir, render.SpeedometerFileName)
		if err := render.WriteSpeedometerPNG(file, v.Current.Speed, v.Current.Heading); err != nil {
			errs = append(errs, err)
		}
	}
	mv := mapview.View{Records: v.History, Current: v.Current, Tracking: v.Tracking}
	if err := mapview.Write(filepath.Join(w.dir, mapview.FileName), mv); err != nil {
		errs = append(errs, err)
	}
	if err := writeJSONFile(filepath.Join(w.dir, StatusFileName), NewStatus(v, w.now())); err != nil {
		errs = append(errs, err)
	}

	w.lastVersion = v.Version
	w.written = true

	if err := errors.Join(errs...); err != nil {
		return err
	}
	w.logger.Debug().Uint64("version", v.Version).Int("records", len(v.History)).Msg("Snapshot written")
	return nil
}

// Run writes a snapshot every interval while the state changes, and a
// final one when ctx is cancelled.
func (w *SnapshotWriter) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if _, err := w.WriteIfChanged(); err != nil {
			w.logger.Error().Err(err).Msg("Snapshot failed")
		}
		select {
		case <-ctx.Done():
			if _, err := w.WriteIfChanged(); err != nil {
				w.logger.Error().Err(err).Msg("Final snapshot failed")
			}
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// writeJSONFile writes v as indented JSON, replacing file atomically.
func writeJSONFile(file string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(file), err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(file), ".status-*.json")
	if err != nil {
		return fmt.Errorf("create temp status: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write status: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close status: %w", err)
	}
	if err := os.Rename(tmpName, file); err != nil {
		return fmt.Errorf("rename status into place: %w", err)
	}
	return nil
}
