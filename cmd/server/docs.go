// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

// @title Travel Companion API
// @version 1.0.0
// @description Location history service for the travel companion tracker.
// @description
// @description All error responses have the shape `{"error": "message"}`.
// @description Requests are rate limited per client IP (default 100 per minute).
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/travelcompanion/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:5000
// @BasePath /api
// @schemes http https
//
// @tag.name Core
// @tag.description Liveness probe
//
// @tag.name Locations
// @tag.description Location history
package main
