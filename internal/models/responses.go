// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package models

// HealthStatus is returned by GET /health.
type HealthStatus struct {
	Status    string `json:"status"`    // always "OK"
	Timestamp string `json:"timestamp"` // RFC 3339, millisecond precision, UTC
}

// MessageResponse carries a human readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
