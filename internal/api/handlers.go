// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package api

import (
	"time"

	"github.com/tomtom215/travelcompanion/internal/store"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_health.go: liveness probe
//   - handlers_locations.go: location history endpoints
type Handler struct {
	store store.Store
	now   func() time.Time
}

// NewHandler creates a handler backed by st.
func NewHandler(st store.Store) *Handler {
	return &Handler{store: st, now: time.Now}
}
