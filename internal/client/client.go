// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

// Package client is the tracker's HTTP client for the location history
// service. Every call is a single attempt; callers decide what a failure
// means.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/travelcompanion/internal/models"
)

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 4 << 10

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API call failed: %d %s", e.StatusCode, e.Message)
}

// Client talks to the history service under baseURL, for example
// http://localhost:5000/api.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client. A non-positive timeout means no client-side timeout.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: max(timeout, 0)},
	}
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Health calls GET /health.
func (c *Client) Health(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus
	err := c.do(ctx, http.MethodGet, "/health", nil, &status)
	return status, err
}

// List calls GET /locations. It never returns a nil slice on success.
func (c *Client) List(ctx context.Context) ([]models.LocationRecord, error) {
	var records []models.LocationRecord
	if err := c.do(ctx, http.MethodGet, "/locations", nil, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.LocationRecord{}
	}
	return records, nil
}

// Append calls POST /locations and returns the stored record.
func (c *Client) Append(ctx context.Context, candidate models.LocationCandidate) (models.LocationRecord, error) {
	var rec models.LocationRecord
	err := c.do(ctx, http.MethodPost, "/locations", candidate, &rec)
	return rec, err
}

// Get calls GET /locations/{id}.
func (c *Client) Get(ctx context.Context, id string) (models.LocationRecord, error) {
	var rec models.LocationRecord
	err := c.do(ctx, http.MethodGet, "/locations/"+url.PathEscape(id), nil, &rec)
	return rec, err
}

// Clear calls DELETE /locations.
func (c *Client) Clear(ctx context.Context) error {
	var msg models.MessageResponse
	return c.do(ctx, http.MethodDelete, "/locations", nil, &msg)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// newAPIError prefers the service's {"error": ...} message and falls back
// to the status text.
func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return apiErr
	}
	var errResp models.ErrorResponse
	if json.Unmarshal(data, &errResp) == nil && errResp.Error != "" {
		apiErr.Message = errResp.Error
	}
	return apiErr
}
