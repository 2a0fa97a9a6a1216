// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

/*
Package api is the HTTP layer of the location history service.

Routes (mounted under server.base_path, default /api):

	GET    /health           liveness probe
	GET    /locations        full history in insertion order
	POST   /locations        append one location
	DELETE /locations        clear the history
	GET    /locations/{id}   one record

Outside the base path the router also serves GET /metrics (Prometheus) and
GET /swagger/* (OpenAPI UI), each switchable in config.

Responses are bare JSON documents: a LocationRecord, an array of them,
{"message": ...} or {"error": ...}. Store errors are mapped to status codes
in one place, storeErrorStatus in response.go.

Middleware order (outermost first):

	Recoverer -> RequestID -> AccessLog -> CORS -> PrometheusMetrics -> RateLimit

Usage:

	h := api.NewHandler(st)
	router := api.NewRouter(h, cfg)
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.Setup()}
*/
package api
