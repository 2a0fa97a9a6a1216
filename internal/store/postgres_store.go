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

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tomtom215/travelcompanion/internal/models"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS locations (
	seq       BIGSERIAL PRIMARY KEY,
	id        TEXT NOT NULL UNIQUE,
	latitude  DOUBLE PRECISION NOT NULL,
	longitude DOUBLE PRECISION NOT NULL,
	timestamp BIGINT NOT NULL,
	address   TEXT
);`

// PostgresStore keeps one row per record. seq preserves insertion order.
type PostgresStore struct {
	mu   sync.Mutex
	pool *pgxpool.Pool
	ids  *IDGenerator
}

// OpenPostgresStore connects with dsn, pings, and creates the schema if absent.
func OpenPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create locations schema: %w", err)
	}

	s := &PostgresStore{pool: pool, ids: NewIDGenerator()}

	var lastID string
	err = pool.QueryRow(ctx, `SELECT id FROM locations ORDER BY seq DESC LIMIT 1`).Scan(&lastID)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
	case err != nil:
		pool.Close()
		return nil, fmt.Errorf("read last location id: %w", err)
	default:
		s.ids.Observe(lastID)
	}
	return s, nil
}

// ListAll implements Store.
func (s *PostgresStore) ListAll(ctx context.Context) ([]models.LocationRecord, error) {
	const q = `SELECT id, latitude, longitude, timestamp, address FROM locations ORDER BY seq`

	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, storageErr("read", err)
	}
	defer rows.Close()

	records := []models.LocationRecord{}
	for rows.Next() {
		var rec models.LocationRecord
		if err := rows.Scan(&rec.ID, &rec.Latitude, &rec.Longitude, &rec.Timestamp, &rec.Address); err != nil {
			return nil, storageErr("read", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("read", err)
	}
	return records, nil
}

// Append implements Store.
func (s *PostgresStore) Append(ctx context.Context, candidate models.LocationCandidate) (models.LocationRecord, error) {
	if err := validateCandidate(candidate); err != nil {
		return models.LocationRecord{}, err
	}

	const q = `
		INSERT INTO locations (id, latitude, longitude, timestamp, address)
		VALUES ($1, $2, $3, $4, $5)`

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := candidate.Record(s.ids.Next())
	if _, err := s.pool.Exec(ctx, q, rec.ID, rec.Latitude, rec.Longitude, rec.Timestamp, rec.Address); err != nil {
		return models.LocationRecord{}, storageErr("write", err)
	}
	return rec, nil
}

// Clear implements Store.
func (s *PostgresStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.pool.Exec(ctx, `TRUNCATE locations`); err != nil {
		return storageErr("clear", err)
	}
	return nil
}

// GetByID implements Store.
func (s *PostgresStore) GetByID(ctx context.Context, id string) (models.LocationRecord, error) {
	const q = `SELECT id, latitude, longitude, timestamp, address FROM locations WHERE id = $1`

	var rec models.LocationRecord
	err := s.pool.QueryRow(ctx, q, id).Scan(&rec.ID, &rec.Latitude, &rec.Longitude, &rec.Timestamp, &rec.Address)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.LocationRecord{}, ErrNotFound
	}
	if err != nil {
		return models.LocationRecord{}, storageErr("read", err)
	}
	return rec, nil
}

// Close implements Store.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
