// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/travelcompanion/internal/config"
	"github.com/tomtom215/travelcompanion/internal/middleware"
)

func TestRouter_UnmatchedRoutes(t *testing.T) {
	h := newTestServer(t, &fakeStore{})

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/nothing"},
		{http.MethodGet, "/elsewhere"},
		{http.MethodPut, "/api/locations"},
		{http.MethodDelete, "/api/locations/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, "", "")
			if rec.Code != http.StatusNotFound {
				t.Fatalf("status = %d, want 404", rec.Code)
			}
			if got := errorBody(t, rec); got != msgRouteNotFound {
				t.Errorf("error = %q, want %q", got, msgRouteNotFound)
			}
		})
	}
}

func TestRouter_PanicRecovered(t *testing.T) {
	h := newTestServer(t, &fakeStore{panicList: true})

	rec := do(t, h, http.MethodGet, "/api/locations", "", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if got := errorBody(t, rec); got != middleware.RecoverMessage {
		t.Errorf("error = %q, want %q", got, middleware.RecoverMessage)
	}
}

func TestRouter_RequestIDEchoed(t *testing.T) {
	h := newTestServer(t, &fakeStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(middleware.RequestIDHeader); got != "abc-123" {
		t.Errorf("%s = %q, want abc-123", middleware.RequestIDHeader, got)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	h := newTestServer(t, &fakeStore{})

	tests := []struct {
		name      string
		origin    string
		wantAllow string
	}{
		{"allowed origin", "http://localhost:3000", "http://localhost:3000"},
		{"other origin", "http://evil.example", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/api/locations", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			req.Header.Set("Access-Control-Request-Headers", "Content-Type")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllow {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantAllow)
			}
			if tt.wantAllow != "" {
				if rec.Code != http.StatusOK {
					t.Errorf("preflight status = %d, want 200", rec.Code)
				}
				if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
					t.Errorf("Access-Control-Allow-Credentials = %q, want true", got)
				}
			}
		})
	}
}

func TestRouter_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Security.RateLimitReqs = 2
	cfg.Security.RateLimitWindow = time.Minute
	h := NewRouter(NewHandler(&fakeStore{}), cfg).Setup()

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = do(t, h, http.MethodGet, "/api/health", "", "")
	}
	if last.Code != http.StatusTooManyRequests {
		t.Errorf("third request status = %d, want 429", last.Code)
	}
}

func TestRouter_RateLimitDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Security.RateLimitReqs = 1
	cfg.Security.RateLimitDisabled = true
	h := NewRouter(NewHandler(&fakeStore{}), cfg).Setup()

	for i := 0; i < 5; i++ {
		if rec := do(t, h, http.MethodGet, "/api/health", "", ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i, rec.Code)
		}
	}
}

func TestRouter_BasePath(t *testing.T) {
	tests := []struct {
		base string
		path string
	}{
		{"", "/health"},
		{"/", "/health"},
		{"v1", "/v1/health"},
		{"/travel/api/", "/travel/api/health"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			cfg := testConfig()
			cfg.Server.BasePath = tt.base
			h := NewRouter(NewHandler(&fakeStore{}), cfg).Setup()

			if rec := do(t, h, http.MethodGet, tt.path, "", ""); rec.Code != http.StatusOK {
				t.Errorf("GET %s status = %d, want 200", tt.path, rec.Code)
			}
		})
	}
}

func TestRouter_Metrics(t *testing.T) {
	h := newTestServer(t, &fakeStore{})
	do(t, h, http.MethodGet, "/api/locations", "", "")

	rec := do(t, h, http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "api_requests_total") {
		t.Error("metrics output lacks api_requests_total")
	}
}

func TestRouter_MetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Server.EnableMetrics = false
	h := NewRouter(NewHandler(&fakeStore{}), cfg).Setup()

	if rec := do(t, h, http.MethodGet, "/metrics", "", ""); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestChiMiddlewareConfigFromSecurity(t *testing.T) {
	got := ChiMiddlewareConfigFromSecurity(config.SecurityConfig{
		CORSOrigins:       []string{"https://a.example"},
		RateLimitReqs:     7,
		RateLimitWindow:   time.Second,
		RateLimitDisabled: true,
	})

	if len(got.CORSAllowedOrigins) != 1 || got.CORSAllowedOrigins[0] != "https://a.example" {
		t.Errorf("origins = %v", got.CORSAllowedOrigins)
	}
	if !got.CORSAllowCredentials {
		t.Error("credentials should be allowed")
	}
	if got.RateLimitRequests != 7 || got.RateLimitWindow != time.Second || !got.RateLimitDisabled {
		t.Errorf("rate limit = %d/%v disabled=%v", got.RateLimitRequests, got.RateLimitWindow, got.RateLimitDisabled)
	}
}
