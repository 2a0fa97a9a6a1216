// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"

	"github.com/tomtom215/travelcompanion/internal/logging"
	"github.com/tomtom215/travelcompanion/internal/models"
)

// JSONFileName is the file kept inside the data directory.
const JSONFileName = "locations.json"

// JSONFileStore keeps the whole history as one JSON array on disk. Every
// mutation reads the file, changes the slice and rewrites it through a
// temp file and rename. A mutex serializes the read-modify-write cycle.
type JSONFileStore struct {
	path string
	mu   sync.Mutex
	ids  *IDGenerator
}

// NewJSONFileStore opens (creating if needed) dir and uses dir/locations.json.
func NewJSONFileStore(dir string) (*JSONFileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dir, err)
	}

	s := &JSONFileStore{
		path: filepath.Join(dir, JSONFileName),
		ids:  NewIDGenerator(),
	}

	records, err := s.read()
	if err != nil {
		// An unreadable file is reported on every call rather than at startup.
		logging.Warn().Err(err).Str("path", s.path).Msg("Location file is not readable")
	}
	for _, rec := range records {
		s.ids.Observe(rec.ID)
	}
	return s, nil
}

// Path returns the JSON file location.
func (s *JSONFileStore) Path() string {
	return s.path
}

func (s *JSONFileStore) read() ([]models.LocationRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.LocationRecord{}, nil
	}
	if err != nil {
		return nil, storageErr("read", err)
	}

	records := []models.LocationRecord{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, storageErr("decode", err)
	}
	if records == nil {
		records = []models.LocationRecord{}
	}
	return records, nil
}

func (s *JSONFileStore) write(records []models.LocationRecord) error {
	if records == nil {
		records = []models.LocationRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return storageErr("encode", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".locations-*.json")
	if err != nil {
		return storageErr("write", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return storageErr("write", err)
	}
	if err := tmp.Close(); err != nil {
		return storageErr("write", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return storageErr("write", err)
	}
	return nil
}

// ListAll implements Store.
func (s *JSONFileStore) ListAll(_ context.Context) ([]models.LocationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Append implements Store.
func (s *JSONFileStore) Append(_ context.Context, candidate models.LocationCandidate) (models.LocationRecord, error) {
	if err := validateCandidate(candidate); err != nil {
		return models.LocationRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return models.LocationRecord{}, err
	}

	rec := candidate.Record(s.ids.Next())
	records = append(records, rec)
	if err := s.write(records); err != nil {
		return models.LocationRecord{}, err
	}
	return rec, nil
}

// Clear implements Store.
func (s *JSONFileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(nil)
}

// GetByID implements Store.
func (s *JSONFileStore) GetByID(_ context.Context, id string) (models.LocationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return models.LocationRecord{}, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return models.LocationRecord{}, ErrNotFound
}

// Close implements Store. The file store holds no open handles.
func (s *JSONFileStore) Close() error {
	return nil
}
