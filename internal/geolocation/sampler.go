// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

// Package geolocation turns a push-based position source into the single
// "current sample" the tracker reads.
//
// A Sampler moves through Idle -> Requesting -> Active while fixes arrive,
// or to Error when the source fails or no first fix arrives within the
// timeout. An error ends the session; Enable starts a new one.
package geolocation

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/travelcompanion/internal/logging"
	"github.com/tomtom215/travelcompanion/internal/metrics"
	"github.com/tomtom215/travelcompanion/internal/models"
)

// State is the sampler lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRequesting
	StateActive
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRequesting:
		return "requesting"
	case StateActive:
		return "active"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// msToKmh converts meters per second to kilometers per hour.
const msToKmh = 3.6

// Sampler holds the latest fix from a Source.
type Sampler struct {
	source Source
	opts   Options
	now    func() time.Time
	logger zerolog.Logger

	mu       sync.RWMutex
	state    State
	current  *models.Sample
	err      *PositionError
	onChange func(Snapshot)

	runMu  sync.Mutex // serializes Enable and Disable
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Snapshot is a consistent view of the sampler.
type Snapshot struct {
	State   State
	Current *models.Sample
	Err     *PositionError
}

// Loading reports whether a session is waiting for its first fix.
func (s Snapshot) Loading() bool {
	return s.State == StateRequesting
}

// NewSampler creates an idle sampler. A nil source makes every Enable fail
// with ErrUnsupported.
func NewSampler(source Source, opts Options) *Sampler {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultOptions().Timeout
	}
	return &Sampler{
		source: source,
		opts:   opts,
		now:    time.Now,
		logger: logging.WithComponent("geolocation"),
	}
}

// OnChange registers fn to be called after every state or sample change.
// fn runs on the sampler goroutine and must not call Enable or Disable.
func (s *Sampler) OnChange(fn func(Snapshot)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Snapshot returns the current state, sample and error.
func (s *Sampler) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Sampler) snapshotLocked() Snapshot {
	snap := Snapshot{State: s.state, Err: s.err}
	if s.current != nil {
		cur := *s.current
		snap.Current = &cur
	}
	return snap
}

// Current returns a copy of the latest sample, or nil.
func (s *Sampler) Current() *models.Sample {
	return s.Snapshot().Current
}

// Enable starts a sampling session. It is a no-op while a healthy session
// runs; after an error it starts a fresh one. Without a source the
// sampler enters the error state and ErrUnsupported is returned.
func (s *Sampler) Enable(ctx context.Context) error {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	if s.cancel != nil {
		if s.Snapshot().State != StateError {
			return nil
		}
		// The previous session failed; its goroutines are already exiting.
		s.cancel()
		s.wg.Wait()
		s.cancel = nil
	}

	if s.source == nil {
		s.update(func() {
			s.state = StateError
			s.err = ErrUnsupported
		})
		metrics.RecordSamplerError(KindUnsupported.String())
		return ErrUnsupported
	}

	s.update(func() {
		s.state = StateRequesting
		s.err = nil
	})

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(runCtx)
	}()

	s.logger.Info().Str("source", s.source.Name()).Dur("timeout", s.opts.Timeout).Msg("Geolocation watch started")
	return nil
}

// Disable stops the session and waits for the watch to exit. No change
// callbacks run after Disable returns. The last sample is kept.
func (s *Sampler) Disable() {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	if s.cancel == nil {
		return
	}
	s.cancel()
	s.wg.Wait()
	s.cancel = nil

	s.update(func() { s.state = StateIdle })

	s.logger.Info().Msg("Geolocation watch stopped")
}

// Running reports whether Enable has been called without a matching
// Disable. A failed session still counts as running.
func (s *Sampler) Running() bool {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	return s.cancel != nil
}

func (s *Sampler) run(ctx context.Context) {
	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()

	fixes := make(chan Position)
	watchErr := make(chan error, 1)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		watchErr <- s.source.Watch(watchCtx, s.opts, fixes)
	}()

	firstFix := time.NewTimer(s.opts.Timeout)
	defer firstFix.Stop()
	timeout := firstFix.C

	for {
		select {
		case <-ctx.Done():
			return

		case p := <-fixes:
			if ctx.Err() != nil {
				return
			}
			timeout = nil
			s.apply(p)

		case err := <-watchErr:
			if ctx.Err() != nil {
				return
			}
			if err == nil {
				// Source finished without failing; keep the last fix.
				<-ctx.Done()
				return
			}
			s.fail(Classify(err))
			return

		case <-timeout:
			s.fail(&PositionError{Kind: KindTimeout, Err: context.DeadlineExceeded})
			return
		}
	}
}

func (s *Sampler) apply(p Position) {
	sample := ToSample(p, s.now)
	s.update(func() {
		s.state = StateActive
		s.current = &sample
		s.err = nil
	})
	metrics.RecordFix(s.source.Name())
	s.logger.Debug().
		Float64("lat", sample.Latitude).
		Float64("lng", sample.Longitude).
		Float64("speed_kmh", sample.Speed).
		Msg("Position fix")
}

func (s *Sampler) fail(pe *PositionError) {
	s.update(func() {
		s.state = StateError
		s.current = nil
		s.err = pe
	})
	metrics.RecordSamplerError(pe.Kind.String())
	s.logger.Warn().Err(pe.Err).Str("kind", pe.Kind.String()).Msg(pe.Error())
}

// update applies fn under the lock and notifies the listener outside it.
func (s *Sampler) update(fn func()) {
	s.mu.Lock()
	fn()
	snap := s.snapshotLocked()
	listener := s.onChange
	s.mu.Unlock()

	if listener != nil {
		listener(snap)
	}
}

// ToSample converts a raw fix. Speed is converted from m/s to km/h; a
// missing speed or heading becomes 0. A zero timestamp is replaced by now.
func ToSample(p Position, now func() time.Time) models.Sample {
	sample := models.Sample{
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Accuracy:  p.Accuracy,
	}
	if p.Speed != nil && !math.IsNaN(*p.Speed) {
		sample.Speed = *p.Speed * msToKmh
	}
	if p.Heading != nil && !math.IsNaN(*p.Heading) {
		sample.Heading = *p.Heading
	}
	ts := p.Timestamp
	if ts.IsZero() {
		ts = now()
	}
	sample.Timestamp = ts.UnixMilli()
	return sample
}
