// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

/*
Command server runs the location history service.

The service appends location samples to a store and serves them back over
a small JSON API:

	GET    /api/health
	GET    /api/locations
	POST   /api/locations
	DELETE /api/locations
	GET    /api/locations/{id}

Prometheus metrics are served at /metrics and the OpenAPI UI at /swagger/.

# Storage

STORAGE_BACKEND selects where records live:

	json      DATA_STORAGE_PATH/locations.json (default)
	badger    DATA_STORAGE_PATH/badger
	postgres  DATABASE_URL

# Configuration

Settings come from built-in defaults, then config.yaml (or CONFIG_PATH),
then environment variables. Common variables:

	PORT=5000
	API_BASE_PATH=/api
	ALLOWED_ORIGINS=http://localhost:3000,http://127.0.0.1:3000
	LOG_LEVEL=info
	LOG_FORMAT=json

# Signal Handling

SIGINT and SIGTERM stop the supervisor tree; the HTTP server drains
in-flight requests for SHUTDOWN_TIMEOUT before the store is closed.
*/
package main
