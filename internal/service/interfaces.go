// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/voice-dashboard/models"
)

// CallService places outbound calls and maintains the call log.
type CallService interface {
	// Dispatch validates phoneNumber, sends the calling agent into a fresh
	// LiveKit room and records the call as dialing.
	Dispatch(ctx context.Context, phoneNumber string) (models.DispatchResult, error)
	// History returns the newest calls; limit is clamped to 1..500 and a
	// non-positive limit means 50.
	History(ctx context.Context, limit int) ([]models.Call, error)
	// Update applies a partial update. Setting the duration recomputes the
	// stored costs; a terminal status stamps ended_at.
	Update(ctx context.Context, id int64, update models.CallUpdate) error
	// CloseStale closes calls that have been dialing for longer than age.
	CloseStale(ctx context.Context, age time.Duration) (int64, error)
}

// CostService prices calls and reports spending.
type CostService interface {
	Calculate(durationSeconds int64) models.CostEstimate
	Report(ctx context.Context) (models.CostReport, error)
	Pricing() models.Pricing
	USDToINR() float64
	SetUSDToINR(rate float64) error
}

// AnalyticsService aggregates call statistics for the dashboard.
type AnalyticsService interface {
	Analytics(ctx context.Context) (models.Analytics, error)
}

// ContactService manages the address book.
type ContactService interface {
	Create(ctx context.Context, contact models.Contact) (int64, error)
	List(ctx context.Context, search string) ([]models.Contact, error)
	Update(ctx context.Context, contact models.Contact) error
	Delete(ctx context.Context, id int64) error
}

// TranscriptService stores the conversation of a call.
type TranscriptService interface {
	Add(ctx context.Context, message models.TranscriptMessage) (int64, error)
	List(ctx context.Context, callID int64) ([]models.TranscriptMessage, error)
}

// SettingsService edits the runtime settings shared with the calling agent.
type SettingsService interface {
	// Settings returns the editable settings grouped by section id.
	Settings(ctx context.Context) (map[string]models.SettingsSection, error)
	// Save writes every non-nil value.
	Save(ctx context.Context, values map[string]*string) error
	Status(ctx context.Context) (models.ServiceStatus, error)
	LiveKitCredentials(ctx context.Context) (models.LiveKitCredentials, error)
}

// AgentService edits the persona of the calling agent.
type AgentService interface {
	Config(ctx context.Context) (models.AgentConfig, error)
	// Save overwrites only the fields present in update.
	Save(ctx context.Context, update models.AgentConfigUpdate) error
	Templates(ctx context.Context) []models.AgentTemplate
}

// AppInfoService reports build information of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetVersionInfo(ctx context.Context) models.VersionInfo
}
