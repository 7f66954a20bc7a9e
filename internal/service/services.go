// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/voice-dashboard/internal/adapter"
	"github.com/MKhiriev/voice-dashboard/internal/config"
	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/internal/store"
	"github.com/MKhiriev/voice-dashboard/internal/validators"
	"github.com/MKhiriev/voice-dashboard/models"
)

// Services aggregates the business services of the dashboard.
type Services struct {
	CallService       CallService
	CostService       CostService
	AnalyticsService  AnalyticsService
	ContactService    ContactService
	TranscriptService TranscriptService
	SettingsService   SettingsService
	AgentService      AgentService
	AppInfoService    AppInfoService
}

// NewServices wires every service on top of storages and the LiveKit
// dispatcher.
func NewServices(storages *store.Storages, dispatcher adapter.DispatchAdapter, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	validator := validators.NewRequestValidator()
	costService := NewCostService(storages.StatsRepository, cfg.Pricing, cfg.App.USDToINR, logger)
	settingsService := NewSettingsService(storages.SettingsStorage, logger)

	return &Services{
		CallService: NewCallService(CallServiceDeps{
			Calls:      storages.CallRepository,
			Contacts:   storages.ContactRepository,
			Settings:   settingsService,
			Costs:      costService,
			Dispatcher: dispatcher,
			Validator:  validator,
		}, cfg.App.DispatchAgentName, logger),
		CostService:       costService,
		AnalyticsService:  NewAnalyticsService(storages.StatsRepository, costService, logger),
		ContactService:    NewContactService(storages.ContactRepository, validator, logger),
		TranscriptService: NewTranscriptService(storages.TranscriptRepository, validator, logger),
		SettingsService:   settingsService,
		AgentService:      NewAgentService(storages.AgentStorage, logger),
		AppInfoService:    appInfoService,
	}, nil
}

// utcNow is the clock of every service; tests replace the now field.
func utcNow() time.Time {
	return time.Now().UTC()
}

// windowStarts returns the UTC start of today and the cutoffs of the
// 7-day and 30-day windows, both aligned to midnight.
func windowStarts(now time.Time) (today, week, month time.Time) {
	now = now.UTC()
	today = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today, today.AddDate(0, 0, -7), today.AddDate(0, 0, -30)
}
