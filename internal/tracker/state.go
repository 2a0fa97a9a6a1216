// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package tracker

import (
	"math"
	"slices"
	"sync"

	"github.com/tomtom215/travelcompanion/internal/geolocation"
	"github.com/tomtom215/travelcompanion/internal/models"
	"github.com/tomtom215/travelcompanion/internal/travel"
)

// ServerStatus is the result of the last liveness probe.
type ServerStatus string

const (
	StatusChecking     ServerStatus = "checking"
	StatusConnected    ServerStatus = "connected"
	StatusDisconnected ServerStatus = "disconnected"
)

// duplicateEpsilon is the per-axis distance in degrees under which two
// records count as the same place.
const duplicateEpsilon = 0.0001

// AppState is everything the tracker knows. All changes go through its
// methods, each of which applies atomically.
type AppState struct {
	mu sync.RWMutex

	history  []models.LocationRecord
	tracking bool
	server   ServerStatus

	current  *models.Sample
	geoState geolocation.State
	geoErr   string

	network     models.NetworkInfo
	weather     *models.WeatherData
	suggestions []models.Suggestion

	version uint64
}

// View is an immutable copy of AppState plus the statistics derived from it.
type View struct {
	History     []models.LocationRecord `json:"history"`
	Tracking    bool                    `json:"tracking"`
	Server      ServerStatus            `json:"serverStatus"`
	Current     *models.Sample          `json:"current"`
	Loading     bool                    `json:"loading"`
	GeoError    string                  `json:"geoError,omitempty"`
	Network     models.NetworkInfo      `json:"network"`
	Weather     *models.WeatherData     `json:"weather,omitempty"`
	Suggestions []models.Suggestion     `json:"suggestions"`
	Stats       models.TravelStats      `json:"stats"`
	Version     uint64                  `json:"version"`
}

// NewAppState returns an empty state with the server status still unknown.
func NewAppState() *AppState {
	return &AppState{
		history:     []models.LocationRecord{},
		server:      StatusChecking,
		suggestions: []models.Suggestion{},
	}
}

// change runs fn under the write lock and bumps the version.
func (s *AppState) change(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
	s.version++
}

// View returns a consistent snapshot. Statistics use the live speed when a
// sample is known.
func (s *AppState) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := View{
		History:     slices.Clone(s.history),
		Tracking:    s.tracking,
		Server:      s.server,
		Loading:     s.geoState == geolocation.StateRequesting,
		GeoError:    s.geoErr,
		Network:     s.network,
		Suggestions: slices.Clone(s.suggestions),
		Version:     s.version,
	}
	var speed float64
	if s.current != nil {
		cur := *s.current
		v.Current = &cur
		speed = cur.Speed
	}
	if s.weather != nil {
		w := *s.weather
		v.Weather = &w
	}
	v.Stats = travel.ComputeStats(v.History, speed)
	return v
}

// Version increases on every change.
func (s *AppState) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Tracking reports whether tracking is enabled.
func (s *AppState) Tracking() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracking
}

// Current returns a copy of the live sample, or nil.
func (s *AppState) Current() *models.Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	cur := *s.current
	return &cur
}

// SamplerFailed reports whether the sampler session ended in an error.
func (s *AppState) SamplerFailed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.geoState == geolocation.StateError
}

// SetTracking enables or disables tracking.
func (s *AppState) SetTracking(on bool) {
	s.change(func() { s.tracking = on })
}

// SetServerStatus records the outcome of a liveness probe.
func (s *AppState) SetServerStatus(status ServerStatus) {
	s.change(func() { s.server = status })
}

// SetHistory replaces the in-memory history.
func (s *AppState) SetHistory(records []models.LocationRecord) {
	cp := slices.Clone(records)
	if cp == nil {
		cp = []models.LocationRecord{}
	}
	s.change(func() { s.history = cp })
}

// MergeRecord appends rec unless a record at the same place is already
// present. It reports whether rec was added.
func (s *AppState) MergeRecord(rec models.LocationRecord) bool {
	var added bool
	s.change(func() {
		if IsDuplicate(s.history, rec) {
			return
		}
		s.history = append(s.history, rec)
		added = true
	})
	return added
}

// ClearHistory empties the in-memory history.
func (s *AppState) ClearHistory() {
	s.change(func() { s.history = []models.LocationRecord{} })
}

// ApplySampler copies the sampler's state, sample and error message.
func (s *AppState) ApplySampler(snap geolocation.Snapshot) {
	s.change(func() {
		s.geoState = snap.State
		s.current = snap.Current
		s.geoErr = ""
		if snap.Err != nil {
			s.geoErr = snap.Err.Error()
		}
	})
}

// SetNetwork records the latest connectivity reading.
func (s *AppState) SetNetwork(info models.NetworkInfo) {
	s.change(func() { s.network = info })
}

// SetWeather records the latest weather reading.
func (s *AppState) SetWeather(w models.WeatherData) {
	s.change(func() { s.weather = &w })
}

// SetSuggestions records the latest nearby places.
func (s *AppState) SetSuggestions(list []models.Suggestion) {
	cp := slices.Clone(list)
	s.change(func() { s.suggestions = cp })
}

// IsDuplicate reports whether any record lies within duplicateEpsilon of
// rec on both axes.
func IsDuplicate(history []models.LocationRecord, rec models.LocationRecord) bool {
	for _, h := range history {
		if math.Abs(h.Latitude-rec.Latitude) < duplicateEpsilon &&
			math.Abs(h.Longitude-rec.Longitude) < duplicateEpsilon {
			return true
		}
	}
	return false
}
