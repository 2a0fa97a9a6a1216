// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package geolocation

import (
	"fmt"
	"time"

	"github.com/tomtom215/travelcompanion/internal/config"
)

// replayPace is the pause between fixes when replaying an NMEA log.
const replayPace = time.Second

// NewSource builds the configured position source. It returns a nil
// Source for config.SourceNone, which the sampler reports as unsupported.
func NewSource(cfg config.GeolocationConfig) (Source, error) {
	switch cfg.Source {
	case config.SourceNone:
		return nil, nil
	case config.SourceStatic, "":
		return NewStaticSource(cfg.StaticLatitude, cfg.StaticLongitude), nil
	case config.SourceNMEA:
		if cfg.NMEAFile != "" {
			return NewReplaySource(cfg.NMEAFile, replayPace), nil
		}
		return NewSerialSource(cfg.NMEADevice, cfg.NMEABaud), nil
	case config.SourceGoogle:
		src, err := NewGoogleSource(cfg.GoogleAPIKey, cfg.GooglePollInterval)
		if err != nil {
			return nil, err
		}
		return src, nil
	default:
		return nil, fmt.Errorf("unknown position source %q", cfg.Source)
	}
}

// OptionsFromConfig maps the configured watch options.
func OptionsFromConfig(cfg config.GeolocationConfig) Options {
	return Options{
		Timeout:      cfg.Timeout,
		HighAccuracy: cfg.HighAccuracy,
		MaximumAge:   cfg.MaximumAge,
	}
}
