// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package api

import (
	"net/http"

	"github.com/tomtom215/travelcompanion/internal/models"
)

// healthTimeFormat is RFC 3339 with millisecond precision.
const healthTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Health handles liveness probes. It never touches the store.
//
// @Summary Liveness probe
// @Description Always returns OK with the current server time
// @Tags Core
// @Produce json
// @Success 200 {object} models.HealthStatus
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, models.HealthStatus{
		Status:    "OK",
		Timestamp: h.now().UTC().Format(healthTimeFormat),
	})
}
