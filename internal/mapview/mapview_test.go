// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package mapview

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/tomtom215/travelcompanion/internal/models"
)

func record(id string, lat, lng float64, ts int64) models.LocationRecord {
	return models.LocationRecord{ID: id, Latitude: lat, Longitude: lng, Timestamp: ts}
}

func roles(fc *geojson.FeatureCollection) []string {
	out := make([]string, 0, len(fc.Features))
	for _, f := range fc.Features {
		out = append(out, f.Properties.MustString("role"))
	}
	return out
}

func TestBuild_Empty(t *testing.T) {
	fc := Build(View{})

	if len(fc.Features) != 0 {
		t.Errorf("features = %d, want 0", len(fc.Features))
	}
	center, ok := fc.ExtraMembers["center"].([]float64)
	if !ok || center[0] != DefaultCenter.Lat() || center[1] != DefaultCenter.Lon() {
		t.Errorf("center = %v, want default", fc.ExtraMembers["center"])
	}
}

func TestBuild_SingleRecord(t *testing.T) {
	fc := Build(View{Records: []models.LocationRecord{record("1", 10, 20, 100)}})

	got := roles(fc)
	want := []string{RoleHistory, RoleStart, RoleCurrent}
	if len(got) != len(want) {
		t.Fatalf("roles = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("roles = %v, want %v", got, want)
			break
		}
	}
}

func TestBuild_PathAndMarkers(t *testing.T) {
	addr := "Dock"
	records := []models.LocationRecord{
		record("1", 10, 20, 100),
		record("2", 11, 21, 200),
		record("3", 12, 22, 300),
	}
	records[2].Address = &addr

	fc := Build(View{Records: records, Tracking: true})

	if len(fc.Features) != 1+3+1+1 {
		t.Fatalf("features = %d, want 6", len(fc.Features))
	}

	path := fc.Features[0]
	line, ok := path.Geometry.(orb.LineString)
	if !ok {
		t.Fatalf("first feature geometry = %T, want LineString", path.Geometry)
	}
	if len(line) != 3 || line[0] != (orb.Point{20, 10}) || line[2] != (orb.Point{22, 12}) {
		t.Errorf("line = %v", line)
	}

	start := fc.Features[4]
	if start.Properties.MustString("role") != RoleStart || start.Geometry.(orb.Point) != (orb.Point{20, 10}) {
		t.Errorf("start = %v %v", start.Properties, start.Geometry)
	}

	current := fc.Features[5]
	if current.Properties.MustString("role") != RoleCurrent {
		t.Errorf("last role = %v", current.Properties["role"])
	}
	if current.Properties.MustString("address") != "Dock" {
		t.Errorf("current address = %v, want Dock", current.Properties["address"])
	}
	if !current.Properties.MustBool("tracking") {
		t.Error("tracking flag not set")
	}

	if fc.BBox == nil {
		t.Fatal("missing bbox")
	}
	if b := fc.BBox.Bound(); b.Min != (orb.Point{20, 10}) || b.Max != (orb.Point{22, 12}) {
		t.Errorf("bbox = %v", b)
	}
}

func TestBuild_LiveSampleIsCurrent(t *testing.T) {
	fc := Build(View{
		Records: []models.LocationRecord{record("1", 10, 20, 100), record("2", 11, 21, 200)},
		Current: &models.Sample{Latitude: 50, Longitude: 5, Speed: 12, Timestamp: 999},
	})

	current := fc.Features[len(fc.Features)-1]
	if current.Geometry.(orb.Point) != (orb.Point{5, 50}) {
		t.Errorf("current = %v, want live sample", current.Geometry)
	}
	center := fc.ExtraMembers["center"].([]float64)
	if center[0] != 50 || center[1] != 5 {
		t.Errorf("center = %v, want [50 5]", center)
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "out", FileName)
	records := []models.LocationRecord{record("1", 10, 20, 100), record("2", 11, 21, 200)}

	if err := Write(file, View{Records: records}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		t.Fatalf("written file is not GeoJSON: %v", err)
	}
	if len(fc.Features) != 1+2+1+1 {
		t.Errorf("features = %d, want 5", len(fc.Features))
	}
	if _, ok := fc.ExtraMembers["zoom"]; !ok {
		t.Error("zoom member lost")
	}
}
