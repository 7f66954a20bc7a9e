// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/voice-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// CallRepository persists the call log.
type CallRepository interface {
	Create(ctx context.Context, call models.Call) (int64, error)
	List(ctx context.Context, limit int) ([]models.Call, error)
	Update(ctx context.Context, id int64, update models.CallUpdate) error
	// CloseStale marks calls still dialing since before cutoff as no_answer
	// and returns how many were closed.
	CloseStale(ctx context.Context, cutoff, endedAt time.Time) (int64, error)
}

// ContactRepository persists the address book.
type ContactRepository interface {
	Create(ctx context.Context, contact models.Contact) (int64, error)
	List(ctx context.Context, search string) ([]models.Contact, error)
	Update(ctx context.Context, contact models.Contact) error
	Delete(ctx context.Context, id int64) error
	TouchLastCalled(ctx context.Context, phoneNumber string, at time.Time) error
}

// TranscriptRepository persists call transcripts.
type TranscriptRepository interface {
	Add(ctx context.Context, message models.TranscriptMessage) (int64, error)
	ListByCall(ctx context.Context, callID int64) ([]models.TranscriptMessage, error)
}

// StatsRepository computes aggregates over the call log.
type StatsRepository interface {
	CostTotals(ctx context.Context) (models.CostTotals, error)
	WindowTotals(ctx context.Context, since time.Time) (models.WindowTotals, error)
	CountCalls(ctx context.Context) (int64, error)
	StatusCounts(ctx context.Context) (map[string]int64, error)
	DailyCounts(ctx context.Context, since time.Time) ([]models.DailyCount, error)
	CountContacts(ctx context.Context) (int64, error)
}

// SettingsStorage reads and writes the runtime settings file.
type SettingsStorage interface {
	// Read returns every key of the settings file; a missing file reads as
	// an empty map.
	Read(ctx context.Context) (map[string]string, error)
	// Write merges values into the settings file, keeping other keys.
	Write(ctx context.Context, values map[string]string) error
}

// AgentStorage reads and writes the agent persona.
type AgentStorage interface {
	Load(ctx context.Context) (models.AgentConfig, error)
	Save(ctx context.Context, cfg models.AgentConfig) error
}
