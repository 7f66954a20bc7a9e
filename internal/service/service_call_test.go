// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/voice-dashboard/internal/adapter"
	"github.com/MKhiriev/voice-dashboard/internal/app"
	"github.com/MKhiriev/voice-dashboard/internal/config"
	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/internal/mock"
	"github.com/MKhiriev/voice-dashboard/internal/store"
	"github.com/MKhiriev/voice-dashboard/internal/validators"
	"github.com/MKhiriev/voice-dashboard/models"
)

var fixedNow = time.Date(2026, 3, 10, 15, 4, 5, 0, time.UTC)

var liveKitSettings = map[string]string{
	KeyLiveKitURL:       "wss://demo.livekit.cloud",
	KeyLiveKitAPIKey:    "APIkey",
	KeyLiveKitAPISecret: "secret",
}

type callServiceFixture struct {
	svc        *callService
	calls      *mock.MockCallRepository
	contacts   *mock.MockContactRepository
	settings   *mock.MockSettingsStorage
	dispatcher *mock.MockDispatchAdapter
}

func newCallServiceFixture(t *testing.T) callServiceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := callServiceFixture{
		calls:      mock.NewMockCallRepository(ctrl),
		contacts:   mock.NewMockContactRepository(ctrl),
		settings:   mock.NewMockSettingsStorage(ctrl),
		dispatcher: mock.NewMockDispatchAdapter(ctrl),
	}

	svc := NewCallService(CallServiceDeps{
		Calls:      f.calls,
		Contacts:   f.contacts,
		Settings:   newTestSettingsService(f.settings),
		Costs:      NewCostService(mock.NewMockStatsRepository(ctrl), config.DefaultPricing(), 83, logger.Nop()),
		Dispatcher: f.dispatcher,
		Validator:  validators.NewRequestValidator(),
	}, config.DefaultDispatchAgentName, logger.Nop())

	f.svc = svc.(*callService)
	f.svc.now = func() time.Time { return fixedNow }
	f.svc.roomSuffix = func() int { return 4242 }
	return f
}

func newTestSettingsService(storage store.SettingsStorage) *settingsService {
	return &settingsService{
		storage:   storage,
		lookupEnv: func(string) string { return "" },
		logger:    logger.Nop(),
	}
}

// ─────────────────────────────────────────────
// Dispatch
// ─────────────────────────────────────────────

func TestCallService_Dispatch_Success(t *testing.T) {
	f := newCallServiceFixture(t)
	ctx := context.Background()

	f.settings.EXPECT().Read(gomock.Any()).Return(liveKitSettings, nil)
	f.dispatcher.EXPECT().
		CreateDispatch(gomock.Any(), models.LiveKitCredentials{
			URL:       "wss://demo.livekit.cloud",
			APIKey:    "APIkey",
			APISecret: "secret",
		}, models.DispatchRequest{
			AgentName: "outbound-caller",
			Room:      "call-919876543210-4242",
			Metadata:  `{"phone_number":"+919876543210"}`,
		}).
		Return(models.Dispatch{ID: "AD_abc"}, nil)
	f.calls.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, call models.Call) (int64, error) {
			assert.Equal(t, "+919876543210", call.PhoneNumber)
			assert.Equal(t, "call-919876543210-4242", call.RoomName)
			assert.Equal(t, "AD_abc", call.DispatchID)
			assert.Equal(t, models.CallStatusDialing, call.Status)
			assert.Equal(t, fixedNow, call.CreatedAt)
			return 7, nil
		})
	f.contacts.EXPECT().TouchLastCalled(gomock.Any(), "+919876543210", fixedNow).Return(nil)

	got, err := f.svc.Dispatch(ctx, "  +919876543210 ")

	require.NoError(t, err)
	assert.Equal(t, models.DispatchResult{
		CallID:      7,
		DispatchID:  "AD_abc",
		RoomName:    "call-919876543210-4242",
		PhoneNumber: "+919876543210",
		Message:     app.MsgCallDispatched,
	}, got)
}

func TestCallService_Dispatch_TouchContactFailureIsIgnored(t *testing.T) {
	f := newCallServiceFixture(t)

	f.settings.EXPECT().Read(gomock.Any()).Return(liveKitSettings, nil)
	f.dispatcher.EXPECT().CreateDispatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Dispatch{ID: "AD_1"}, nil)
	f.calls.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	f.contacts.EXPECT().TouchLastCalled(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db is locked"))

	got, err := f.svc.Dispatch(context.Background(), "+919876543210")

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.CallID)
}

func TestCallService_Dispatch_InvalidPhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantErr error
		wantMsg string
	}{
		{name: "empty", phone: "  ", wantErr: validators.ErrPhoneRequired, wantMsg: "Phone number is required"},
		{name: "no plus", phone: "919876543210", wantErr: validators.ErrPhoneNoCountryCode, wantMsg: `Phone number must start with "+" and country code`},
		{name: "too short", phone: "+91987", wantErr: validators.ErrPhoneTooShort, wantMsg: `Phone number "+91987" looks too short`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCallServiceFixture(t)

			_, err := f.svc.Dispatch(context.Background(), tt.phone)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestCallService_Dispatch_CredentialsMissing(t *testing.T) {
	f := newCallServiceFixture(t)

	f.settings.EXPECT().Read(gomock.Any()).Return(map[string]string{KeyLiveKitURL: "wss://demo.livekit.cloud"}, nil)

	_, err := f.svc.Dispatch(context.Background(), "+919876543210")

	assert.ErrorIs(t, err, ErrLiveKitCredentialsMissing)
	assert.Equal(t, "LiveKit credentials missing in Settings", err.Error())
}

func TestCallService_Dispatch_SettingsReadError(t *testing.T) {
	f := newCallServiceFixture(t)

	f.settings.EXPECT().Read(gomock.Any()).Return(nil, store.ErrReadingSettings)

	_, err := f.svc.Dispatch(context.Background(), "+919876543210")

	assert.ErrorIs(t, err, store.ErrReadingSettings)
}

func TestCallService_Dispatch_AdapterError_NoCallRecorded(t *testing.T) {
	f := newCallServiceFixture(t)

	f.settings.EXPECT().Read(gomock.Any()).Return(liveKitSettings, nil)
	f.dispatcher.EXPECT().
		CreateDispatch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Dispatch{}, adapter.ErrLiveKitUnauthorized)

	_, err := f.svc.Dispatch(context.Background(), "+919876543210")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDispatchFailed)
	assert.ErrorIs(t, err, adapter.ErrLiveKitUnauthorized)
}

func TestCallService_Dispatch_StoreError(t *testing.T) {
	f := newCallServiceFixture(t)

	f.settings.EXPECT().Read(gomock.Any()).Return(liveKitSettings, nil)
	f.dispatcher.EXPECT().CreateDispatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Dispatch{ID: "AD_1"}, nil)
	f.calls.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), store.ErrExecutingQuery)

	_, err := f.svc.Dispatch(context.Background(), "+919876543210")

	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ─────────────────────────────────────────────
// History
// ─────────────────────────────────────────────

func TestCallService_History_Limits(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "zero uses default", limit: 0, want: DefaultHistoryLimit},
		{name: "negative uses default", limit: -3, want: DefaultHistoryLimit},
		{name: "in range", limit: 10, want: 10},
		{name: "clamped", limit: 10_000, want: MaxHistoryLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCallServiceFixture(t)
			calls := []models.Call{{ID: 1}}
			f.calls.EXPECT().List(gomock.Any(), tt.want).Return(calls, nil)

			got, err := f.svc.History(context.Background(), tt.limit)

			require.NoError(t, err)
			assert.Equal(t, calls, got)
		})
	}
}

// ─────────────────────────────────────────────
// Update
// ─────────────────────────────────────────────

func TestCallService_Update_DurationComputesCost(t *testing.T) {
	f := newCallServiceFixture(t)
	duration := int64(120)

	f.calls.EXPECT().
		Update(gomock.Any(), int64(5), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, u models.CallUpdate) error {
			require.NotNil(t, u.Cost)
			assert.InDelta(t, 0.0886, u.Cost.TotalCostUSD, 1e-9)
			assert.InDelta(t, 7.35, u.Cost.TotalCostINR, 1e-9)
			assert.Nil(t, u.EndedAt)
			return nil
		})

	require.NoError(t, f.svc.Update(context.Background(), 5, models.CallUpdate{Duration: &duration}))
}

func TestCallService_Update_TerminalStatusSetsEndedAt(t *testing.T) {
	for _, status := range []string{models.CallStatusCompleted, models.CallStatusFailed, models.CallStatusNoAnswer} {
		t.Run(status, func(t *testing.T) {
			f := newCallServiceFixture(t)

			f.calls.EXPECT().
				Update(gomock.Any(), int64(1), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ int64, u models.CallUpdate) error {
					require.NotNil(t, u.EndedAt)
					assert.Equal(t, fixedNow, *u.EndedAt)
					assert.Nil(t, u.Cost)
					return nil
				})

			require.NoError(t, f.svc.Update(context.Background(), 1, models.CallUpdate{Status: &status}))
		})
	}
}

func TestCallService_Update_NonTerminalStatusKeepsEndedAt(t *testing.T) {
	f := newCallServiceFixture(t)
	status := "ringing"

	f.calls.EXPECT().
		Update(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, u models.CallUpdate) error {
			assert.Nil(t, u.EndedAt)
			return nil
		})

	require.NoError(t, f.svc.Update(context.Background(), 1, models.CallUpdate{Status: &status}))
}

func TestCallService_Update_EmptyIsNoop(t *testing.T) {
	f := newCallServiceFixture(t)

	assert.NoError(t, f.svc.Update(context.Background(), 1, models.CallUpdate{}))
}

func TestCallService_Update_NegativeDuration(t *testing.T) {
	f := newCallServiceFixture(t)
	duration := int64(-1)

	err := f.svc.Update(context.Background(), 1, models.CallUpdate{Duration: &duration})

	assert.ErrorIs(t, err, validators.ErrNegativeDuration)
}

func TestCallService_Update_NotFound(t *testing.T) {
	f := newCallServiceFixture(t)
	notes := "left voicemail"

	f.calls.EXPECT().Update(gomock.Any(), int64(99), gomock.Any()).Return(store.ErrCallNotFound)

	err := f.svc.Update(context.Background(), 99, models.CallUpdate{Notes: &notes})

	assert.ErrorIs(t, err, store.ErrCallNotFound)
}

// ─────────────────────────────────────────────
// CloseStale
// ─────────────────────────────────────────────

func TestCallService_CloseStale(t *testing.T) {
	f := newCallServiceFixture(t)

	f.calls.EXPECT().CloseStale(gomock.Any(), fixedNow.Add(-30*time.Minute), fixedNow).Return(int64(3), nil)

	n, err := f.svc.CloseStale(context.Background(), 30*time.Minute)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
