// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package tracker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/travelcompanion/internal/mapview"
	"github.com/tomtom215/travelcompanion/internal/models"
	"github.com/tomtom215/travelcompanion/internal/render"
)

func TestSnapshotWriter_WritesFiles(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	state := NewAppState()
	state.SetHistory([]models.LocationRecord{
		rec("1", 40.7829, -73.9654, 0),
		rec("2", 40.7850, -73.9600, 60000),
	})
	withSample(state, 40.7850, -73.9600, 60000)

	w := NewSnapshotWriter(state, dir, time.Hour)
	if err := w.Write(); err != nil {
		t.Fatalf("Write: %v", err)
	}

	for _, name := range []string{render.PathFileName, render.SpeedometerFileName, mapview.FileName, StatusFileName} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, StatusFileName))
	if err != nil {
		t.Fatal(err)
	}
	var status Status
	if err := json.Unmarshal(data, &status); err != nil {
		t.Fatalf("status.json: %v", err)
	}
	if status.Stats.LocationsVisited != 2 || len(status.History) != 2 {
		t.Errorf("unexpected status %+v", status)
	}
	if status.Formatted.TotalDistance == "" || status.FunFacts == nil {
		t.Errorf("formatted stats missing: %+v", status.Formatted)
	}
	if status.Direction != "N" {
		t.Errorf("direction = %q, want N for heading 0", status.Direction)
	}
}

func TestSnapshotWriter_NoSpeedometerWithoutSample(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := NewSnapshotWriter(NewAppState(), dir, time.Hour).Write(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, render.SpeedometerFileName)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("speedometer should not be written without a sample, stat err = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, render.PathFileName)); err != nil {
		t.Errorf("path placeholder should still be written: %v", err)
	}
}

func TestSnapshotWriter_WriteIfChanged(t *testing.T) {
	t.Parallel()

	state := NewAppState()
	w := NewSnapshotWriter(state, t.TempDir(), time.Hour)

	if wrote, err := w.WriteIfChanged(); err != nil || !wrote {
		t.Fatalf("first write = %v, %v", wrote, err)
	}
	if wrote, _ := w.WriteIfChanged(); wrote {
		t.Error("unchanged state should not be rewritten")
	}
	state.SetTracking(true)
	if wrote, _ := w.WriteIfChanged(); !wrote {
		t.Error("changed state should be rewritten")
	}
}

func TestSnapshotWriter_RunWritesFinalSnapshot(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	state := NewAppState()
	w := NewSnapshotWriter(state, dir, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(filepath.Join(dir, StatusFileName)); err == nil {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	state.SetHistory([]models.LocationRecord{rec("1", 1, 1, 0)})
	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, StatusFileName))
	if err != nil {
		t.Fatal(err)
	}
	var status Status
	if err := json.Unmarshal(data, &status); err != nil {
		t.Fatal(err)
	}
	if len(status.History) != 1 {
		t.Errorf("final snapshot should include the last change, got %d records", len(status.History))
	}
}
