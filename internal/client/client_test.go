// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/travelcompanion/internal/api"
	"github.com/tomtom215/travelcompanion/internal/config"
	"github.com/tomtom215/travelcompanion/internal/models"
	"github.com/tomtom215/travelcompanion/internal/store"
)

// newServiceClient runs the real history service on a temp JSON store.
func newServiceClient(t *testing.T) *Client {
	t.Helper()

	st, err := store.NewJSONFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewJSONFileStore: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	cfg := &config.Config{
		Server:   config.ServerConfig{BasePath: "/api"},
		Security: config.SecurityConfig{CORSOrigins: []string{"http://localhost:3000"}, RateLimitDisabled: true},
	}
	srv := httptest.NewServer(api.NewRouter(api.NewHandler(st), cfg).Setup())
	t.Cleanup(srv.Close)

	return New(srv.URL+"/api/", 5*time.Second)
}

func TestClient_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := newServiceClient(t)

	health, err := c.Health(ctx)
	if err != nil || health.Status != "OK" {
		t.Fatalf("Health() = %+v, %v", health, err)
	}

	records, err := c.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if records == nil || len(records) != 0 {
		t.Fatalf("expected empty non-nil history, got %v", records)
	}

	rec, err := c.Append(ctx, models.NewCandidate(40.7829, -73.9654, 1700000000000))
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if rec.ID == "" || rec.Latitude != 40.7829 || rec.Address != nil {
		t.Errorf("unexpected record %+v", rec)
	}

	got, err := c.Get(ctx, rec.ID)
	if err != nil || got != rec {
		t.Errorf("Get() = %+v, %v; want %+v", got, err, rec)
	}

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if records, _ := c.List(ctx); len(records) != 0 {
		t.Errorf("history not cleared: %v", records)
	}
}

func TestClient_APIErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := newServiceClient(t)

	_, err := c.Get(ctx, "nope")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T %v", err, err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Message != "Location not found" {
		t.Errorf("unexpected API error %+v", apiErr)
	}

	_, err = c.Append(ctx, models.LocationCandidate{})
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusBadRequest || apiErr.Message != "Missing required fields" {
		t.Errorf("Append(empty) = %v", err)
	}
}

func TestClient_ErrorWithoutJSONBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>upstream down</html>")
	}))
	defer srv.Close()

	_, err := New(srv.URL, time.Second).Health(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Message != "Bad Gateway" {
		t.Errorf("Message = %q, want status text", apiErr.Message)
	}
	if !strings.Contains(apiErr.Error(), "502") {
		t.Errorf("Error() = %q", apiErr.Error())
	}
}

func TestClient_SendsJSON(t *testing.T) {
	t.Parallel()

	var gotType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":"1","latitude":0,"longitude":0,"timestamp":5,"address":null}`)
	}))
	defer srv.Close()

	rec, err := New(srv.URL, time.Second).Append(context.Background(), models.NewCandidate(0, 0, 5))
	if err != nil {
		t.Fatal(err)
	}
	if gotType != "application/json" {
		t.Errorf("Content-Type = %q", gotType)
	}
	for _, want := range []string{`"latitude":0`, `"longitude":0`, `"timestamp":5`} {
		if !strings.Contains(gotBody, want) {
			t.Errorf("body %s missing %s", gotBody, want)
		}
	}
	if rec.ID != "1" || rec.Timestamp != 5 {
		t.Errorf("unexpected record %+v", rec)
	}
}

func TestClient_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, time.Second).Health(context.Background())
	if err == nil {
		t.Fatal("expected an error for a closed server")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Error("transport failures must not be reported as API errors")
	}
}
