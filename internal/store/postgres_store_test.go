// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

//go:build integration

package store

import (
	"context"
	"testing"

	"github.com/tomtom215/travelcompanion/internal/testinfra"
)

func TestPostgresStoreConformance(t *testing.T) {
	testinfra.SkipIfNoDocker(t)

	ctx := context.Background()
	pg, err := testinfra.NewPostgresContainer(ctx)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	testinfra.CleanupContainer(t, pg)

	runConformance(t, func(t *testing.T) Store {
		t.Helper()
		s, err := OpenPostgresStore(ctx, pg.DSN)
		if err != nil {
			t.Fatalf("OpenPostgresStore() error = %v", err)
		}
		// Subtests share one database.
		if err := s.Clear(ctx); err != nil {
			t.Fatalf("Clear() error = %v", err)
		}
		t.Cleanup(func() { _ = s.Close() })
		return s
	})
}
