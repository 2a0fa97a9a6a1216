// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the config file locations searched in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/travelcompanion/config.yaml",
	"/etc/travelcompanion/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            5000,
			Host:            "",
			BasePath:        "/api",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			EnableSwagger:   true,
			EnableMetrics:   true,
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Storage: StorageConfig{
			Backend:  BackendJSON,
			DataPath: "./data",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		App: AppConfig{
			Name:    "Smart Travel Companion",
			Version: "1.0.0",
		},
		Client: ClientConfig{
			APIBaseURL:       "http://localhost:5000/api",
			SyncInterval:     10 * time.Second,
			RequestTimeout:   10 * time.Second,
			OutputDir:        "./output",
			SnapshotInterval: 10 * time.Second,
			TrackOnStart:     true,
		},
		Geolocation: GeolocationConfig{
			Source:             SourceStatic,
			Timeout:            15 * time.Second,
			HighAccuracy:       true,
			MaximumAge:         0,
			NMEABaud:           4800,
			GooglePollInterval: 30 * time.Second,
			StaticLatitude:     40.7829,
			StaticLongitude:    -73.9654,
		},
		Providers: ProvidersConfig{
			WeatherLatency: time.Second,
			NearbyLatency:  500 * time.Millisecond,
		},
	}
}

// LoadWithKoanf loads configuration in three layers, later layers winning:
//
//  1. Defaults from defaultConfig
//  2. YAML file from CONFIG_PATH or DefaultConfigPaths, if one exists
//  3. Environment variables listed in envTransformFunc
//
// The result is validated before it is returned.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed as comma separated lists when they arrive as strings.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
// Variables not listed here are ignored.
var envMappings = map[string]string{
	"port":                   "server.port",
	"host":                   "server.host",
	"api_base_path":          "server.base_path",
	"http_timeout":           "server.timeout",
	"shutdown_timeout":       "server.shutdown_timeout",
	"enable_swagger":         "server.enable_swagger",
	"enable_metrics":         "server.enable_metrics",
	"allowed_origins":        "security.cors_origins",
	"rate_limit_requests":    "security.rate_limit_reqs",
	"rate_limit_window":      "security.rate_limit_window",
	"disable_rate_limit":     "security.rate_limit_disabled",
	"storage_backend":        "storage.backend",
	"data_storage_path":      "storage.data_path",
	"database_url":           "storage.database_url",
	"log_level":              "logging.level",
	"log_format":             "logging.format",
	"log_caller":             "logging.caller",
	"app_name":               "app.name",
	"app_version":            "app.version",
	"dev_mode":               "app.dev_mode",
	"enable_logging":         "app.enable_logging",
	"api_base_url":           "client.api_base_url",
	"sync_interval":          "client.sync_interval",
	"client_request_timeout": "client.request_timeout",
	"output_dir":             "client.output_dir",
	"snapshot_interval":      "client.snapshot_interval",
	"track_on_start":         "client.track_on_start",
	"position_source":        "geolocation.source",
	"geo_timeout":            "geolocation.timeout",
	"geo_high_accuracy":      "geolocation.high_accuracy",
	"geo_maximum_age":        "geolocation.maximum_age",
	"nmea_device":            "geolocation.nmea_device",
	"nmea_baud":              "geolocation.nmea_baud",
	"nmea_file":              "geolocation.nmea_file",
	"google_maps_api_key":    "geolocation.google_api_key",
	"google_poll_interval":   "geolocation.google_poll_interval",
	"static_latitude":        "geolocation.static_latitude",
	"static_longitude":       "geolocation.static_longitude",
	"weather_latency":        "providers.weather_latency",
	"nearby_latency":         "providers.nearby_latency",
}

// envTransformFunc maps an environment variable name to its koanf path.
//
// Examples:
//   - PORT -> server.port
//   - ALLOWED_ORIGINS -> security.cors_origins
//   - DATA_STORAGE_PATH -> storage.data_path
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
