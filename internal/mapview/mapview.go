// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

// Package mapview exports the location history as a GeoJSON document that
// any web map (Leaflet, MapLibre, geojson.io) can display directly.
//
// The collection contains, in order:
//
//   - one LineString "path" feature when there are at least two records
//   - one Point per record with role "history"
//   - a "start" Point at the first record
//   - a "current" Point at the live position, or the last record when no
//     live sample is known
//
// The foreign members "center" ([lat, lng]) and "zoom" tell a viewer where
// to open.
package mapview

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/tomtom215/travelcompanion/internal/models"
)

// FileName is the export written into the tracker output directory.
const FileName = "map.geojson"

// Feature roles.
const (
	RolePath    = "path"
	RoleHistory = "history"
	RoleStart   = "start"
	RoleCurrent = "current"
)

// Viewer defaults used when nothing is known about the position.
var DefaultCenter = orb.Point{-0.09, 51.505}

const DefaultZoom = 13

// View is the input to Build.
type View struct {
	Records  []models.LocationRecord
	Current  *models.Sample // nil when no live fix
	Tracking bool
}

func point(lat, lng float64) orb.Point {
	return orb.Point{lng, lat}
}

// Build assembles the feature collection for v.
func Build(v View) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	if len(v.Records) >= 2 {
		line := make(orb.LineString, 0, len(v.Records))
		for _, r := range v.Records {
			line = append(line, point(r.Latitude, r.Longitude))
		}
		f := geojson.NewFeature(line)
		f.Properties["role"] = RolePath
		f.Properties["stroke"] = "#3B82F6"
		f.Properties["stroke-width"] = 3
		f.Properties["stroke-opacity"] = 0.7
		f.Properties["dashArray"] = "5, 10"
		fc.Append(f)
	}

	for _, r := range v.Records {
		fc.Append(recordFeature(r, RoleHistory))
	}

	if len(v.Records) > 0 {
		fc.Append(recordFeature(v.Records[0], RoleStart))
	}

	var current *geojson.Feature
	switch {
	case v.Current != nil:
		current = geojson.NewFeature(point(v.Current.Latitude, v.Current.Longitude))
		current.Properties["timestamp"] = v.Current.Timestamp
		current.Properties["accuracy"] = v.Current.Accuracy
		current.Properties["speed"] = v.Current.Speed
		current.Properties["heading"] = v.Current.Heading
	case len(v.Records) > 0:
		current = recordFeature(v.Records[len(v.Records)-1], RoleCurrent)
	}
	if current != nil {
		current.Properties["role"] = RoleCurrent
		current.Properties["tracking"] = v.Tracking
		fc.Append(current)
	}

	center := DefaultCenter
	if current != nil {
		center = current.Geometry.(orb.Point)
	}
	fc.ExtraMembers = geojson.Properties{
		"center": []float64{center.Lat(), center.Lon()},
		"zoom":   DefaultZoom,
	}

	if len(fc.Features) > 0 {
		fc.BBox = geojson.NewBBox(bound(fc))
	}
	return fc
}

func recordFeature(r models.LocationRecord, role string) *geojson.Feature {
	f := geojson.NewFeature(point(r.Latitude, r.Longitude))
	f.ID = r.ID
	f.Properties["role"] = role
	f.Properties["id"] = r.ID
	f.Properties["timestamp"] = r.Timestamp
	if r.Address != nil {
		f.Properties["address"] = *r.Address
	} else {
		f.Properties["address"] = nil
	}
	return f
}

func bound(fc *geojson.FeatureCollection) orb.Bound {
	b := fc.Features[0].Geometry.Bound()
	for _, f := range fc.Features[1:] {
		b = b.Union(f.Geometry.Bound())
	}
	return b
}

// Write encodes Build(v) to file, replacing it atomically.
func Write(file string, v View) error {
	data, err := Build(v).MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode geojson: %w", err)
	}

	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".map-*.geojson")
	if err != nil {
		return fmt.Errorf("create temp geojson: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write geojson: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close geojson: %w", err)
	}
	if err := os.Rename(tmpName, file); err != nil {
		return fmt.Errorf("rename geojson into place: %w", err)
	}
	return nil
}
