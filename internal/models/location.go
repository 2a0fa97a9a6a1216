// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

// Package models holds the types shared by the history service, the stores
// and the tracker client.
package models

// LocationRecord is one persisted position fix.
//
// Example:
//
//	{
//	  "id": "1760870400000",
//	  "latitude": 40.7829,
//	  "longitude": -73.9654,
//	  "timestamp": 1760870399512,
//	  "address": null
//	}
type LocationRecord struct {
	ID        string  `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"` // epoch milliseconds
	Address   *string `json:"address"`   // null when not supplied
}

// LocationCandidate is the body of POST /locations. Pointer fields tell a
// missing value apart from a legitimate zero coordinate.
type LocationCandidate struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
	Timestamp *int64   `json:"timestamp" validate:"required"`
	Address   *string  `json:"address,omitempty"`
}

// NewCandidate builds a candidate with every required field present.
func NewCandidate(lat, lng float64, timestamp int64) LocationCandidate {
	return LocationCandidate{Latitude: &lat, Longitude: &lng, Timestamp: &timestamp}
}

// Complete reports whether latitude, longitude and timestamp are all set.
func (c LocationCandidate) Complete() bool {
	return c.Latitude != nil && c.Longitude != nil && c.Timestamp != nil
}

// Record materialises the candidate under id. Callers must check Complete first.
func (c LocationCandidate) Record(id string) LocationRecord {
	rec := LocationRecord{
		ID:        id,
		Latitude:  *c.Latitude,
		Longitude: *c.Longitude,
		Timestamp: *c.Timestamp,
	}
	if c.Address != nil && *c.Address != "" {
		addr := *c.Address
		rec.Address = &addr
	}
	return rec
}
