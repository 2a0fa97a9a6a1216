// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package geolocation

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"googlemaps.github.io/maps"

	"github.com/tomtom215/travelcompanion/internal/logging"
)

// googleRequestTimeout bounds one Geolocate call.
const googleRequestTimeout = 10 * time.Second

// GoogleSource polls the Google Geolocation API. Fixes carry accuracy but
// no speed or heading.
type GoogleSource struct {
	client  *maps.Client
	limiter *rate.Limiter

	// scanWiFi lists nearby access points for high accuracy requests.
	scanWiFi func(ctx context.Context) ([]maps.WiFiAccessPoint, error)
}

// NewGoogleSource creates a source that polls at most once per interval.
// Extra client options (for example maps.WithBaseURL) are appended.
func NewGoogleSource(apiKey string, interval time.Duration, opts ...maps.ClientOption) (*GoogleSource, error) {
	c, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}
	return &GoogleSource{
		client:   c,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
		scanWiFi: scanWiFiAccessPoints,
	}, nil
}

func (g *GoogleSource) Name() string { return "google" }

// Watch polls until ctx is cancelled. Any failed request ends the session.
func (g *GoogleSource) Watch(ctx context.Context, opts Options, fixes chan<- Position) error {
	logger := logging.WithComponent("google-geolocation")
	for {
		if err := g.limiter.Wait(ctx); err != nil {
			return nil
		}

		p, err := g.locate(ctx, opts)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return classifyGoogleError(err)
		}
		logger.Debug().Float64("accuracy", p.Accuracy).Msg("Geolocate response")

		if !send(ctx, fixes, p) {
			return nil
		}
	}
}

func (g *GoogleSource) locate(ctx context.Context, opts Options) (Position, error) {
	req := &maps.GeolocationRequest{ConsiderIP: true}
	if opts.HighAccuracy && g.scanWiFi != nil {
		// Best effort: the API falls back to IP when no access points are sent.
		if aps, err := g.scanWiFi(ctx); err == nil {
			req.WiFiAccessPoints = aps
		}
	}

	reqCtx, cancel := context.WithTimeout(ctx, googleRequestTimeout)
	defer cancel()

	resp, err := g.client.Geolocate(reqCtx, req)
	if err != nil {
		return Position{}, err
	}
	return Position{
		Latitude:  resp.Location.Lat,
		Longitude: resp.Location.Lng,
		Accuracy:  resp.Accuracy,
		Timestamp: time.Now(),
	}, nil
}

func classifyGoogleError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "keyInvalid"),
		strings.Contains(msg, "REQUEST_DENIED"),
		strings.Contains(msg, "accessNotConfigured"),
		strings.Contains(msg, "PERMISSION_DENIED"):
		return &PositionError{Kind: KindPermissionDenied, Err: err}
	case strings.Contains(msg, "notFound"):
		return unavailable(err)
	case errors.Is(err, context.DeadlineExceeded):
		return &PositionError{Kind: KindTimeout, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return unavailable(err)
	}
	return &PositionError{Kind: KindOther, Err: err}
}

// scanWiFiAccessPoints lists visible access points with nmcli.
func scanWiFiAccessPoints(ctx context.Context) ([]maps.WiFiAccessPoint, error) {
	if _, err := exec.LookPath("nmcli"); err != nil {
		return nil, fmt.Errorf("nmcli not found: %w", err)
	}

	out, err := exec.CommandContext(ctx, "nmcli", "-t", "-f", "BSSID,SIGNAL", "dev", "wifi", "list").Output()
	if err != nil {
		return nil, fmt.Errorf("run nmcli: %w", err)
	}
	return parseNmcliWiFi(string(out)), nil
}

// parseNmcliWiFi parses terse nmcli output. BSSID colons are escaped as
// "\:" in terse mode.
func parseNmcliWiFi(out string) []maps.WiFiAccessPoint {
	var aps []maps.WiFiAccessPoint
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := strings.ReplaceAll(scanner.Text(), `\:`, "-")
		bssid, signal, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		mac := strings.ReplaceAll(strings.TrimSpace(bssid), "-", ":")
		if !isValidMAC(mac) {
			continue
		}
		strength, err := strconv.Atoi(strings.TrimSpace(signal))
		if err != nil {
			continue
		}
		aps = append(aps, maps.WiFiAccessPoint{MACAddress: mac, SignalStrength: float64(strength)})
	}
	return aps
}

func isValidMAC(mac string) bool {
	parts := strings.Split(mac, ":")
	if len(parts) != 6 {
		return false
	}
	for _, part := range parts {
		if len(part) != 2 {
			return false
		}
		if _, err := strconv.ParseUint(part, 16, 8); err != nil {
			return false
		}
	}
	return true
}
