// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/voice-dashboard/internal/config"
	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/internal/service"
	"github.com/MKhiriev/voice-dashboard/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

type mockCallSvc struct {
	dispatchFn   func(ctx context.Context, phone string) (models.DispatchResult, error)
	historyFn    func(ctx context.Context, limit int) ([]models.Call, error)
	updateFn     func(ctx context.Context, id int64, u models.CallUpdate) error
	closeStaleFn func(ctx context.Context, age time.Duration) (int64, error)
}

func (m *mockCallSvc) Dispatch(ctx context.Context, phone string) (models.DispatchResult, error) {
	if m.dispatchFn != nil {
		return m.dispatchFn(ctx, phone)
	}
	return models.DispatchResult{}, nil
}

func (m *mockCallSvc) History(ctx context.Context, limit int) ([]models.Call, error) {
	if m.historyFn != nil {
		return m.historyFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockCallSvc) Update(ctx context.Context, id int64, u models.CallUpdate) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, u)
	}
	return nil
}

func (m *mockCallSvc) CloseStale(ctx context.Context, age time.Duration) (int64, error) {
	if m.closeStaleFn != nil {
		return m.closeStaleFn(ctx, age)
	}
	return 0, nil
}

type mockCostSvc struct {
	reportFn func(ctx context.Context) (models.CostReport, error)
}

func (m *mockCostSvc) Calculate(int64) models.CostEstimate { return models.CostEstimate{} }
func (m *mockCostSvc) Pricing() models.Pricing             { return models.Pricing{} }
func (m *mockCostSvc) USDToINR() float64                   { return 83 }
func (m *mockCostSvc) SetUSDToINR(float64) error           { return nil }

func (m *mockCostSvc) Report(ctx context.Context) (models.CostReport, error) {
	if m.reportFn != nil {
		return m.reportFn(ctx)
	}
	return models.CostReport{}, nil
}

type mockAnalyticsSvc struct {
	analyticsFn func(ctx context.Context) (models.Analytics, error)
}

func (m *mockAnalyticsSvc) Analytics(ctx context.Context) (models.Analytics, error) {
	if m.analyticsFn != nil {
		return m.analyticsFn(ctx)
	}
	return models.Analytics{}, nil
}

type mockContactSvc struct {
	createFn func(ctx context.Context, c models.Contact) (int64, error)
	listFn   func(ctx context.Context, search string) ([]models.Contact, error)
	updateFn func(ctx context.Context, c models.Contact) error
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockContactSvc) Create(ctx context.Context, c models.Contact) (int64, error) {
	if m.createFn != nil {
		return m.createFn(ctx, c)
	}
	return 0, nil
}

func (m *mockContactSvc) List(ctx context.Context, search string) ([]models.Contact, error) {
	if m.listFn != nil {
		return m.listFn(ctx, search)
	}
	return nil, nil
}

func (m *mockContactSvc) Update(ctx context.Context, c models.Contact) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, c)
	}
	return nil
}

func (m *mockContactSvc) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockTranscriptSvc struct {
	addFn  func(ctx context.Context, msg models.TranscriptMessage) (int64, error)
	listFn func(ctx context.Context, callID int64) ([]models.TranscriptMessage, error)
}

func (m *mockTranscriptSvc) Add(ctx context.Context, msg models.TranscriptMessage) (int64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, msg)
	}
	return 0, nil
}

func (m *mockTranscriptSvc) List(ctx context.Context, callID int64) ([]models.TranscriptMessage, error) {
	if m.listFn != nil {
		return m.listFn(ctx, callID)
	}
	return []models.TranscriptMessage{}, nil
}

type mockSettingsSvc struct {
	settingsFn func(ctx context.Context) (map[string]models.SettingsSection, error)
	saveFn     func(ctx context.Context, values map[string]*string) error
	statusFn   func(ctx context.Context) (models.ServiceStatus, error)
}

func (m *mockSettingsSvc) Settings(ctx context.Context) (map[string]models.SettingsSection, error) {
	if m.settingsFn != nil {
		return m.settingsFn(ctx)
	}
	return map[string]models.SettingsSection{}, nil
}

func (m *mockSettingsSvc) Save(ctx context.Context, values map[string]*string) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, values)
	}
	return nil
}

func (m *mockSettingsSvc) Status(ctx context.Context) (models.ServiceStatus, error) {
	if m.statusFn != nil {
		return m.statusFn(ctx)
	}
	return models.ServiceStatus{}, nil
}

func (m *mockSettingsSvc) LiveKitCredentials(context.Context) (models.LiveKitCredentials, error) {
	return models.LiveKitCredentials{}, nil
}

type mockAgentSvc struct {
	configFn    func(ctx context.Context) (models.AgentConfig, error)
	saveFn      func(ctx context.Context, u models.AgentConfigUpdate) error
	templatesFn func(ctx context.Context) []models.AgentTemplate
}

func (m *mockAgentSvc) Config(ctx context.Context) (models.AgentConfig, error) {
	if m.configFn != nil {
		return m.configFn(ctx)
	}
	return models.AgentConfig{}, nil
}

func (m *mockAgentSvc) Save(ctx context.Context, u models.AgentConfigUpdate) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, u)
	}
	return nil
}

func (m *mockAgentSvc) Templates(ctx context.Context) []models.AgentTemplate {
	if m.templatesFn != nil {
		return m.templatesFn(ctx)
	}
	return nil
}

type mockAppInfoSvc struct {
	version string
}

func (m *mockAppInfoSvc) GetAppVersion(context.Context) string { return m.version }

func (m *mockAppInfoSvc) GetVersionInfo(context.Context) models.VersionInfo {
	return models.VersionInfo{Version: m.version, BuildDate: "N/A", BuildCommit: "N/A"}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestServices returns services backed by zero-value mocks; tests
// overwrite the fields they exercise.
func newTestServices() *service.Services {
	return &service.Services{
		CallService:       &mockCallSvc{},
		CostService:       &mockCostSvc{},
		AnalyticsService:  &mockAnalyticsSvc{},
		ContactService:    &mockContactSvc{},
		TranscriptService: &mockTranscriptSvc{},
		SettingsService:   &mockSettingsSvc{},
		AgentService:      &mockAgentSvc{},
		AppInfoService:    &mockAppInfoSvc{version: "1.0.0"},
	}
}

func newTestConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App:    config.App{AdminUser: "admin"},
		Server: config.Server{DispatchRateLimit: 100, DispatchBurst: 100},
	}
}

func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	h, err := NewHandler(services, newTestConfig(), nil, logger.Nop())
	require.NoError(t, err)
	return h
}

// encodeBody serialises v to JSON and returns it as an io.Reader.
func encodeBody(t *testing.T, v any) io.Reader {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

// decodeResponse unmarshals the recorder body into a generic map.
func decodeResponse(t *testing.T, body *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(body.Bytes(), &out))
	return out
}
