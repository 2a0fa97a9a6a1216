// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/travelcompanion/internal/models"
)

// Key layout:
//
//	loc:<20-digit sequence>  -> JSON LocationRecord
//	id:<record id>           -> loc key
//	meta:seq                 -> badger sequence lease
//
// Zero-padded sequence numbers make prefix iteration return records in
// insertion order.
const (
	locationKeyPrefix = "loc:"
	idKeyPrefix       = "id:"
	sequenceKey       = "meta:seq"
	sequenceBandwidth = 100
)

// BadgerStore keeps one key per record in an embedded BadgerDB.
type BadgerStore struct {
	mu    sync.Mutex // serializes Append and Clear
	db    *badger.DB
	seq   *badger.Sequence
	ids   *IDGenerator
	owned bool
}

// OpenBadgerStore opens (creating if needed) a BadgerDB at dir.
func OpenBadgerStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for locations: %w", err)
	}

	s, err := NewBadgerStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	s.owned = true
	return s, nil
}

// NewBadgerStore uses an already open database. Close releases the sequence
// but leaves db open.
func NewBadgerStore(db *badger.DB) (*BadgerStore, error) {
	seq, err := db.GetSequence([]byte(sequenceKey), sequenceBandwidth)
	if err != nil {
		return nil, fmt.Errorf("acquire location sequence: %w", err)
	}

	s := &BadgerStore{db: db, seq: seq, ids: NewIDGenerator()}

	last, err := s.lastRecord()
	if err != nil {
		_ = seq.Release()
		return nil, err
	}
	if last != nil {
		s.ids.Observe(last.ID)
	}
	return s, nil
}

func locationKey(seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", locationKeyPrefix, seq))
}

func (s *BadgerStore) lastRecord() (*models.LocationRecord, error) {
	var rec *models.LocationRecord
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(locationKeyPrefix)
		// Reverse iteration seeks to the last key <= the seek key.
		seek := append(append([]byte{}, prefix...), 0xFF)
		it.Seek(seek)
		if !it.ValidForPrefix(prefix) {
			return nil
		}
		return it.Item().Value(func(val []byte) error {
			rec = &models.LocationRecord{}
			return json.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, storageErr("read", err)
	}
	return rec, nil
}

// ListAll implements Store.
func (s *BadgerStore) ListAll(_ context.Context) ([]models.LocationRecord, error) {
	records := []models.LocationRecord{}

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(locationKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec models.LocationRecord
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, storageErr("read", err)
	}
	return records, nil
}

// Append implements Store.
func (s *BadgerStore) Append(_ context.Context, candidate models.LocationCandidate) (models.LocationRecord, error) {
	if err := validateCandidate(candidate); err != nil {
		return models.LocationRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.seq.Next()
	if err != nil {
		return models.LocationRecord{}, storageErr("sequence", err)
	}

	rec := candidate.Record(s.ids.Next())
	data, err := json.Marshal(rec)
	if err != nil {
		return models.LocationRecord{}, storageErr("encode", err)
	}

	key := locationKey(n)
	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key, data); err != nil {
			return fmt.Errorf("set location: %w", err)
		}
		if err := txn.Set([]byte(idKeyPrefix+rec.ID), key); err != nil {
			return fmt.Errorf("set id index: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.LocationRecord{}, storageErr("write", err)
	}
	return rec, nil
}

// Clear implements Store.
func (s *BadgerStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.DropPrefix([]byte(locationKeyPrefix), []byte(idKeyPrefix)); err != nil {
		return storageErr("clear", err)
	}
	return nil
}

// GetByID implements Store.
func (s *BadgerStore) GetByID(_ context.Context, id string) (models.LocationRecord, error) {
	var rec models.LocationRecord

	err := s.db.View(func(txn *badger.Txn) error {
		idx, err := txn.Get([]byte(idKeyPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get id index: %w", err)
		}
		key, err := idx.ValueCopy(nil)
		if err != nil {
			return err
		}

		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get location: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})

	if errors.Is(err, ErrNotFound) {
		return models.LocationRecord{}, ErrNotFound
	}
	if err != nil {
		return models.LocationRecord{}, storageErr("read", err)
	}
	return rec, nil
}

// Close releases the sequence and, when the store opened the database, closes it.
func (s *BadgerStore) Close() error {
	err := s.seq.Release()
	if s.owned {
		if cerr := s.db.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
