// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

// Package config loads the settings shared by the server and the tracker.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// environment variables. See LoadWithKoanf for the precedence rules and
// envTransformFunc for the recognised variable names.
package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// Config is the root configuration.
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Security    SecurityConfig    `koanf:"security"`
	Storage     StorageConfig     `koanf:"storage"`
	Logging     LoggingConfig     `koanf:"logging"`
	App         AppConfig         `koanf:"app"`
	Client      ClientConfig      `koanf:"client"`
	Geolocation GeolocationConfig `koanf:"geolocation"`
	Providers   ProvidersConfig   `koanf:"providers"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	BasePath        string        `koanf:"base_path"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	EnableSwagger   bool          `koanf:"enable_swagger"`
	EnableMetrics   bool          `koanf:"enable_metrics"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds CORS and rate limit settings.
//
// Environment Variables:
//   - ALLOWED_ORIGINS: comma separated origin allow-list
//   - RATE_LIMIT_REQUESTS: requests per window per client IP (default: 100)
//   - RATE_LIMIT_WINDOW: window length (default: 1m)
//   - DISABLE_RATE_LIMIT: turn the limiter off (default: false)
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// Storage backends.
const (
	BackendJSON     = "json"
	BackendBadger   = "badger"
	BackendPostgres = "postgres"
)

// StorageConfig selects and configures the location store.
type StorageConfig struct {
	// Backend is json, badger or postgres.
	Backend string `koanf:"backend"`

	// DataPath is the directory holding locations.json or the badger files.
	DataPath string `koanf:"data_path"`

	// DatabaseURL is the pgx connection string for the postgres backend.
	DatabaseURL string `koanf:"database_url"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// AppConfig carries the dashboard-level feature flags.
type AppConfig struct {
	Name          string `koanf:"name"`
	Version       string `koanf:"version"`
	DevMode       bool   `koanf:"dev_mode"`
	EnableLogging bool   `koanf:"enable_logging"`
}

// ClientConfig configures the tracker's connection to the history service
// and where it writes rendered snapshots.
type ClientConfig struct {
	APIBaseURL       string        `koanf:"api_base_url"`
	SyncInterval     time.Duration `koanf:"sync_interval"`
	RequestTimeout   time.Duration `koanf:"request_timeout"`
	OutputDir        string        `koanf:"output_dir"`
	SnapshotInterval time.Duration `koanf:"snapshot_interval"`
	TrackOnStart     bool          `koanf:"track_on_start"`
}

// Position sources.
const (
	SourceNMEA   = "nmea"
	SourceGoogle = "google"
	SourceStatic = "static"
	SourceNone   = "none"
)

// GeolocationConfig configures the position source behind the sampler.
type GeolocationConfig struct {
	Source       string        `koanf:"source"`
	Timeout      time.Duration `koanf:"timeout"`
	HighAccuracy bool          `koanf:"high_accuracy"`
	MaximumAge   time.Duration `koanf:"maximum_age"`

	// NMEA over a serial device, or replayed from NMEAFile when set.
	NMEADevice string `koanf:"nmea_device"`
	NMEABaud   int    `koanf:"nmea_baud"`
	NMEAFile   string `koanf:"nmea_file"`

	GoogleAPIKey       string        `koanf:"google_api_key"`
	GooglePollInterval time.Duration `koanf:"google_poll_interval"`

	StaticLatitude  float64 `koanf:"static_latitude"`
	StaticLongitude float64 `koanf:"static_longitude"`
}

// ProvidersConfig configures the mocked weather and nearby-place providers.
type ProvidersConfig struct {
	WeatherLatency time.Duration `koanf:"weather_latency"`
	NearbyLatency  time.Duration `koanf:"nearby_latency"`
}

// Load reads configuration using the layered koanf loader.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// StorageFile returns the path of the JSON store file.
func (c *Config) StorageFile() string {
	return filepath.Join(c.Storage.DataPath, "locations.json")
}
