// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/voice-dashboard/internal/config"
	"github.com/MKhiriev/voice-dashboard/internal/logger"
)

// Storages aggregates every repository and file store of the dashboard.
type Storages struct {
	CallRepository       CallRepository
	ContactRepository    ContactRepository
	TranscriptRepository TranscriptRepository
	StatsRepository      StatsRepository
	SettingsStorage      SettingsStorage
	AgentStorage         AgentStorage

	db *DB
}

// NewStorages connects to the database, applies migrations and wires the
// repositories.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	log.Info().Str("dialect", db.Dialect()).Msg("database migrated")

	return &Storages{
		CallRepository:       NewCallRepository(db, log),
		ContactRepository:    NewContactRepository(db, log),
		TranscriptRepository: NewTranscriptRepository(db, log),
		StatsRepository:      NewStatsRepository(db, log),
		SettingsStorage:      NewSettingsFileStorage(cfg.App.SettingsFile, log),
		AgentStorage:         NewAgentFileStorage(cfg.App.AgentFile, log),
		db:                   db,
	}, nil
}

// Ping checks that the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
