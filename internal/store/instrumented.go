// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package store

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/travelcompanion/internal/metrics"
	"github.com/tomtom215/travelcompanion/internal/models"
)

// Instrumented records Prometheus timings for every call on the wrapped store.
type Instrumented struct {
	next    Store
	backend string
}

// NewInstrumented wraps next; backend becomes the metric label.
func NewInstrumented(next Store, backend string) *Instrumented {
	return &Instrumented{next: next, backend: backend}
}

func (s *Instrumented) observe(op string, start time.Time, err error) {
	// Caller mistakes are not storage failures.
	var verr *ValidationError
	if errors.Is(err, ErrNotFound) || errors.As(err, &verr) {
		err = nil
	}
	metrics.RecordStoreOperation(s.backend, op, time.Since(start), err)
}

// ListAll implements Store.
func (s *Instrumented) ListAll(ctx context.Context) ([]models.LocationRecord, error) {
	start := time.Now()
	records, err := s.next.ListAll(ctx)
	s.observe("list", start, err)
	return records, err
}

// Append implements Store.
func (s *Instrumented) Append(ctx context.Context, c models.LocationCandidate) (models.LocationRecord, error) {
	start := time.Now()
	rec, err := s.next.Append(ctx, c)
	s.observe("append", start, err)
	if err == nil {
		metrics.LocationsAppended.Inc()
	}
	return rec, err
}

// Clear implements Store.
func (s *Instrumented) Clear(ctx context.Context) error {
	start := time.Now()
	err := s.next.Clear(ctx)
	s.observe("clear", start, err)
	return err
}

// GetByID implements Store.
func (s *Instrumented) GetByID(ctx context.Context, id string) (models.LocationRecord, error) {
	start := time.Now()
	rec, err := s.next.GetByID(ctx, id)
	s.observe("get", start, err)
	return rec, err
}

// Close implements Store.
func (s *Instrumented) Close() error {
	return s.next.Close()
}
