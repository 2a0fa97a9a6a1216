// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

// Package metrics defines the Prometheus collectors for the history service
// and the tracker client. All collectors register on the default registry
// and are served from GET /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// Store

	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "location_store_operation_duration_seconds",
			Help:    "Duration of location store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "operation"},
	)

	StoreOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "location_store_errors_total",
			Help: "Total number of failed location store operations",
		},
		[]string{"backend", "operation"},
	)

	LocationsAppended = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "locations_appended_total",
			Help: "Total number of location records stored",
		},
	)

	// Tracker client

	SyncTicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_sync_ticks_total",
			Help: "Sync task ticks by outcome (connected, disconnected)",
		},
		[]string{"result"},
	)

	SyncAppends = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_sync_appends_total",
			Help: "Samples forwarded to the history service by outcome (stored, duplicate, failed)",
		},
		[]string{"result"},
	)

	BackendConnected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracker_backend_connected",
			Help: "1 when the last liveness probe succeeded, 0 otherwise",
		},
	)

	SamplerFixes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geolocation_fixes_total",
			Help: "Position fixes received from the position source",
		},
		[]string{"source"},
	)

	SamplerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geolocation_errors_total",
			Help: "Position source failures by kind",
		},
		[]string{"kind"},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest moves the in-flight gauge up or down.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordStoreOperation records the duration and outcome of a store call.
func RecordStoreOperation(backend, operation string, duration time.Duration, err error) {
	StoreOperationDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())
	if err != nil {
		StoreOperationErrors.WithLabelValues(backend, operation).Inc()
	}
}

// RecordSyncTick records the liveness result of one sync tick.
func RecordSyncTick(connected bool) {
	if connected {
		SyncTicks.WithLabelValues("connected").Inc()
		BackendConnected.Set(1)
		return
	}
	SyncTicks.WithLabelValues("disconnected").Inc()
	BackendConnected.Set(0)
}

// RecordSyncAppend records the outcome of forwarding one sample.
func RecordSyncAppend(result string) {
	SyncAppends.WithLabelValues(result).Inc()
}

// RecordFix counts a fix from the named source.
func RecordFix(source string) {
	SamplerFixes.WithLabelValues(source).Inc()
}

// RecordSamplerError counts a sampler failure of the given kind.
func RecordSamplerError(kind string) {
	SamplerErrors.WithLabelValues(kind).Inc()
}
