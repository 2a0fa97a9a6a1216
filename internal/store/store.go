// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

// Package store persists LocationRecords.
//
// Three backends implement Store:
//
//   - JSONFileStore: one pretty-printed JSON array, rewritten on every mutation
//   - BadgerStore: embedded key-value store, one key per record
//   - PostgresStore: one row per record
//
// All of them keep insertion order, assign ids with IDGenerator and
// serialize mutations within the process.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/travelcompanion/internal/models"
)

// Store is the location history.
type Store interface {
	// ListAll returns every record in insertion order. It never returns a nil slice.
	ListAll(ctx context.Context) ([]models.LocationRecord, error)

	// Append validates the candidate, assigns an id and persists it.
	Append(ctx context.Context, candidate models.LocationCandidate) (models.LocationRecord, error)

	// Clear removes every record.
	Clear(ctx context.Context) error

	// GetByID returns ErrNotFound when no record has the id.
	GetByID(ctx context.Context, id string) (models.LocationRecord, error)

	Close() error
}

// ErrNotFound is returned by GetByID for an unknown id.
var ErrNotFound = errors.New("location not found")

// ValidationError reports the required fields a candidate is missing.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// StorageError wraps a failure of the backing medium.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// validateCandidate returns a *ValidationError when a required field is absent.
func validateCandidate(c models.LocationCandidate) error {
	var missing []string
	if c.Latitude == nil {
		missing = append(missing, "latitude")
	}
	if c.Longitude == nil {
		missing = append(missing, "longitude")
	}
	if c.Timestamp == nil {
		missing = append(missing, "timestamp")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
