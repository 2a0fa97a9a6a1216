// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

// Package travel derives trip statistics from a location history.
//
// Everything here is a pure function of its inputs; callers recompute on
// every history or speed change.
package travel

import (
	"math"

	"github.com/tomtom215/travelcompanion/internal/models"
)

// EarthRadiusKm is the mean Earth radius used for all distances.
const EarthRadiusKm = 6371.0

// MovingThresholdKmh is the segment speed above which time counts as moving.
const MovingThresholdKmh = 1.0

// HaversineKm returns the great-circle distance between two points in kilometers.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// ComputeStats summarizes records, which must be in insertion order.
// currentSpeed (km/h) seeds MaxSpeed so a live reading above every segment
// speed is still reported.
//
// Segments with non-positive elapsed time or zero distance add distance but
// never speed or moving time, so out-of-order timestamps cannot produce
// infinite or negative speeds.
func ComputeStats(records []models.LocationRecord, currentSpeed float64) models.TravelStats {
	stats := models.TravelStats{
		MaxSpeed:         currentSpeed,
		LocationsVisited: len(records),
	}
	if len(records) < 2 {
		return stats
	}

	for i := 1; i < len(records); i++ {
		prev, cur := records[i-1], records[i]

		d := HaversineKm(prev.Latitude, prev.Longitude, cur.Latitude, cur.Longitude)
		stats.TotalDistance += d

		hours := float64(cur.Timestamp-prev.Timestamp) / 1000 / 3600
		if hours > 0 && d > 0 {
			speed := d / hours
			stats.MaxSpeed = math.Max(stats.MaxSpeed, speed)
			if speed > MovingThresholdKmh {
				stats.TimeMoving += hours * 3600
			}
		}
	}

	stats.TotalTime = float64(records[len(records)-1].Timestamp-records[0].Timestamp) / 1000
	if stats.TotalTime > 0 {
		stats.AverageSpeed = stats.TotalDistance / (stats.TotalTime / 3600)
	}
	return stats
}
