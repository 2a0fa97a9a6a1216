// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolateEnv points CONFIG_PATH at a missing file and moves to an empty
// directory so no stray config.yaml is picked up.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Chdir(t.TempDir())
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port = %d, want 5000", cfg.Server.Port)
	}
	if cfg.Server.BasePath != "/api" {
		t.Errorf("Server.BasePath = %q, want /api", cfg.Server.BasePath)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[0] != "http://localhost:3000" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Storage.Backend != BackendJSON || cfg.Storage.DataPath != "./data" {
		t.Errorf("Storage = %+v", cfg.Storage)
	}
	if cfg.Client.SyncInterval != 10*time.Second {
		t.Errorf("Client.SyncInterval = %v, want 10s", cfg.Client.SyncInterval)
	}
	if cfg.Geolocation.Timeout != 15*time.Second || !cfg.Geolocation.HighAccuracy || cfg.Geolocation.MaximumAge != 0 {
		t.Errorf("Geolocation = %+v", cfg.Geolocation)
	}
	if cfg.App.Name != "Smart Travel Companion" {
		t.Errorf("App.Name = %q", cfg.App.Name)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port = %d, want 5000", cfg.Server.Port)
	}
	if cfg.StorageFile() != filepath.Join("data", "locations.json") {
		t.Errorf("StorageFile() = %q", cfg.StorageFile())
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	isolateEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("API_BASE_PATH", "/v1")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("DATA_STORAGE_PATH", "/var/lib/tc")
	t.Setenv("SYNC_INTERVAL", "30s")
	t.Setenv("ENABLE_LOGGING", "true")
	t.Setenv("APP_NAME", "Road Trip")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.BasePath != "/v1" {
		t.Errorf("Server.BasePath = %q, want /v1", cfg.Server.BasePath)
	}
	want := []string{"https://a.example", "https://b.example"}
	if strings.Join(cfg.Security.CORSOrigins, "|") != strings.Join(want, "|") {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if cfg.Storage.DataPath != "/var/lib/tc" {
		t.Errorf("Storage.DataPath = %q", cfg.Storage.DataPath)
	}
	if cfg.Client.SyncInterval != 30*time.Second {
		t.Errorf("Client.SyncInterval = %v, want 30s", cfg.Client.SyncInterval)
	}
	if !cfg.App.EnableLogging || cfg.App.Name != "Road Trip" {
		t.Errorf("App = %+v", cfg.App)
	}
}

func TestLoadWithKoanf_FileThenEnv(t *testing.T) {
	isolateEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 7000
storage:
  backend: badger
  data_path: /tmp/tc-badger
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("Server.Port = %d, want 7000 from file", cfg.Server.Port)
	}
	if cfg.Storage.Backend != BackendBadger {
		t.Errorf("Storage.Backend = %q, want badger", cfg.Storage.Backend)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, env should win over file", cfg.Logging.Level)
	}
}

func TestLoadWithKoanf_InvalidFails(t *testing.T) {
	isolateEnv(t)
	t.Setenv("STORAGE_BACKEND", "sqlite")

	if _, err := LoadWithKoanf(); err == nil {
		t.Fatal("expected validation error for unknown backend")
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := map[string]string{
		"PORT":                "server.port",
		"ALLOWED_ORIGINS":     "security.cors_origins",
		"DATA_STORAGE_PATH":   "storage.data_path",
		"GOOGLE_MAPS_API_KEY": "geolocation.google_api_key",
		"PATH":                "",
		"HOME":                "",
	}
	for in, want := range tests {
		if got := envTransformFunc(in); got != want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "PORT"},
		{"base path without slash", func(c *Config) { c.Server.BasePath = "api" }, "API_BASE_PATH"},
		{"base path trailing slash", func(c *Config) { c.Server.BasePath = "/api/" }, "API_BASE_PATH"},
		{"no origins", func(c *Config) { c.Security.CORSOrigins = nil }, "ALLOWED_ORIGINS"},
		{"rate limit out of range", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit disabled skips bounds", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"postgres without url", func(c *Config) { c.Storage.Backend = BackendPostgres }, "DATABASE_URL"},
		{"relative api url", func(c *Config) { c.Client.APIBaseURL = "/api" }, "API_BASE_URL"},
		{"sync too fast", func(c *Config) { c.Client.SyncInterval = time.Millisecond }, "SYNC_INTERVAL"},
		{"nmea without device", func(c *Config) { c.Geolocation.Source = SourceNMEA }, "NMEA_DEVICE"},
		{"nmea file is enough", func(c *Config) {
			c.Geolocation.Source = SourceNMEA
			c.Geolocation.NMEAFile = "track.nmea"
		}, ""},
		{"google without key", func(c *Config) { c.Geolocation.Source = SourceGoogle }, "GOOGLE_MAPS_API_KEY"},
		{"unknown source", func(c *Config) { c.Geolocation.Source = "wifi" }, "POSITION_SOURCE"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}
