// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/health", "200"))

	RecordAPIRequest("GET", "/api/health", "200", 3*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/health", "200"))
	if after-before != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec = %v, want %v", got, before)
	}
}

func TestRecordStoreOperation(t *testing.T) {
	errBefore := testutil.ToFloat64(StoreOperationErrors.WithLabelValues("json", "append"))

	RecordStoreOperation("json", "append", time.Millisecond, nil)
	if got := testutil.ToFloat64(StoreOperationErrors.WithLabelValues("json", "append")); got != errBefore {
		t.Errorf("successful op should not count as error, got delta %v", got-errBefore)
	}

	RecordStoreOperation("json", "append", time.Millisecond, errors.New("disk full"))
	if got := testutil.ToFloat64(StoreOperationErrors.WithLabelValues("json", "append")); got != errBefore+1 {
		t.Errorf("failed op delta = %v, want 1", got-errBefore)
	}
}

func TestRecordSyncTick(t *testing.T) {
	RecordSyncTick(true)
	if got := testutil.ToFloat64(BackendConnected); got != 1 {
		t.Errorf("connected gauge = %v, want 1", got)
	}
	RecordSyncTick(false)
	if got := testutil.ToFloat64(BackendConnected); got != 0 {
		t.Errorf("connected gauge = %v, want 0", got)
	}
}

func TestRecordSamplerCounters(t *testing.T) {
	fixes := testutil.ToFloat64(SamplerFixes.WithLabelValues("static"))
	errs := testutil.ToFloat64(SamplerErrors.WithLabelValues("timeout"))

	RecordFix("static")
	RecordSamplerError("timeout")

	if got := testutil.ToFloat64(SamplerFixes.WithLabelValues("static")); got != fixes+1 {
		t.Errorf("fixes delta = %v, want 1", got-fixes)
	}
	if got := testutil.ToFloat64(SamplerErrors.WithLabelValues("timeout")); got != errs+1 {
		t.Errorf("errors delta = %v, want 1", got-errs)
	}
}
