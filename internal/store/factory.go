// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package store

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/tomtom215/travelcompanion/internal/config"
)

// Open builds the backend selected by cfg.Backend, wrapped with metrics.
func Open(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	var (
		s   Store
		err error
	)

	switch cfg.Backend {
	case config.BackendJSON, "":
		s, err = NewJSONFileStore(cfg.DataPath)
	case config.BackendBadger:
		s, err = OpenBadgerStore(filepath.Join(cfg.DataPath, "badger"))
	case config.BackendPostgres:
		s, err = OpenPostgresStore(ctx, cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	backend := cfg.Backend
	if backend == "" {
		backend = config.BackendJSON
	}
	return NewInstrumented(s, backend), nil
}
