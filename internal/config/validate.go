// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
	minSyncInterval      = time.Second
)

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true,
}

var validLogFormats = map[string]bool{
	"json": true, "console": true,
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateStorage(); err != nil {
		return err
	}
	if err := c.validateClient(); err != nil {
		return err
	}
	if err := c.validateGeolocation(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	if !strings.HasPrefix(c.Server.BasePath, "/") {
		return fmt.Errorf("API_BASE_PATH must start with '/', got %q", c.Server.BasePath)
	}
	if c.Server.BasePath != "/" && strings.HasSuffix(c.Server.BasePath, "/") {
		return fmt.Errorf("API_BASE_PATH must not end with '/', got %q", c.Server.BasePath)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("ALLOWED_ORIGINS must list at least one origin")
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateStorage() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendBadger:
		if c.Storage.DataPath == "" {
			return fmt.Errorf("DATA_STORAGE_PATH is required when STORAGE_BACKEND=%s", c.Storage.Backend)
		}
	case BackendPostgres:
		if c.Storage.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORAGE_BACKEND=postgres")
		}
	default:
		return fmt.Errorf("STORAGE_BACKEND must be one of: json, badger, postgres")
	}
	return nil
}

func (c *Config) validateClient() error {
	u, err := url.Parse(c.Client.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("API_BASE_URL must be an absolute URL, got %q", c.Client.APIBaseURL)
	}
	if c.Client.SyncInterval < minSyncInterval {
		return fmt.Errorf("SYNC_INTERVAL must be at least %v", minSyncInterval)
	}
	if c.Client.SnapshotInterval < minSyncInterval {
		return fmt.Errorf("SNAPSHOT_INTERVAL must be at least %v", minSyncInterval)
	}
	return nil
}

func (c *Config) validateGeolocation() error {
	g := c.Geolocation
	if g.Timeout <= 0 {
		return fmt.Errorf("GEO_TIMEOUT must be positive")
	}
	switch g.Source {
	case SourceNone, SourceStatic:
	case SourceNMEA:
		if g.NMEADevice == "" && g.NMEAFile == "" {
			return fmt.Errorf("NMEA_DEVICE or NMEA_FILE is required when POSITION_SOURCE=nmea")
		}
		if g.NMEAFile == "" && g.NMEABaud <= 0 {
			return fmt.Errorf("NMEA_BAUD must be positive")
		}
	case SourceGoogle:
		if g.GoogleAPIKey == "" {
			return fmt.Errorf("GOOGLE_MAPS_API_KEY is required when POSITION_SOURCE=google")
		}
		if g.GooglePollInterval < time.Second {
			return fmt.Errorf("GOOGLE_POLL_INTERVAL must be at least 1s")
		}
	default:
		return fmt.Errorf("POSITION_SOURCE must be one of: nmea, google, static, none")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
