// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package models

// Sample is the latest fix reported by the geolocation sampler.
type Sample struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`  // meters
	Speed     float64 `json:"speed"`     // km/h
	Heading   float64 `json:"heading"`   // degrees, 0 when unknown
	Timestamp int64   `json:"timestamp"` // epoch milliseconds
}

// TravelStats is derived from the location history on every change and
// never persisted.
type TravelStats struct {
	TotalDistance    float64 `json:"totalDistance"` // km
	TotalTime        float64 `json:"totalTime"`     // seconds
	AverageSpeed     float64 `json:"averageSpeed"`  // km/h
	MaxSpeed         float64 `json:"maxSpeed"`      // km/h
	LocationsVisited int     `json:"locationsVisited"`
	TimeMoving       float64 `json:"timeMoving"` // seconds
}

// NetworkInfo describes host connectivity.
type NetworkInfo struct {
	Online        bool   `json:"online"`
	Type          string `json:"type"`
	EffectiveType string `json:"effectiveType"`
}
