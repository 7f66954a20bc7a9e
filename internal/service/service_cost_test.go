// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/voice-dashboard/internal/config"
	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/internal/mock"
	"github.com/MKhiriev/voice-dashboard/internal/store"
	"github.com/MKhiriev/voice-dashboard/models"
)

func newTestCostService(t *testing.T) (*costService, *mock.MockStatsRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	stats := mock.NewMockStatsRepository(ctrl)

	svc := NewCostService(stats, config.DefaultPricing(), 83, logger.Nop()).(*costService)
	svc.now = func() time.Time { return fixedNow }
	return svc, stats
}

// ─────────────────────────────────────────────
// Calculate
// ─────────────────────────────────────────────

func TestCostService_Calculate_TwoMinutes(t *testing.T) {
	svc, _ := newTestCostService(t)

	got := svc.Calculate(120)

	assert.InDelta(t, 0.02, got.CostLiveKit, 1e-9)
	assert.InDelta(t, 0.0118, got.CostSTT, 1e-9)
	assert.InDelta(t, 0.054, got.CostTTS, 1e-9)
	assert.InDelta(t, 0.00276, got.CostLLM, 1e-9)
	assert.InDelta(t, 0.0886, got.TotalCostUSD, 1e-9)
	assert.InDelta(t, 7.35, got.TotalCostINR, 1e-9)
	assert.InDelta(t, 2.0, got.DurationMinutes, 1e-9)
}

func TestCostService_Calculate_ZeroDurationStillChargesLLM(t *testing.T) {
	svc, _ := newTestCostService(t)

	got := svc.Calculate(0)

	assert.Zero(t, got.CostLiveKit)
	assert.Zero(t, got.CostSTT)
	assert.Zero(t, got.CostTTS)
	assert.InDelta(t, 0.00276, got.CostLLM, 1e-9)
	assert.InDelta(t, 0.0028, got.TotalCostUSD, 1e-9)
	assert.Zero(t, got.DurationMinutes)
}

func TestCostService_Calculate_ShortCalls(t *testing.T) {
	tests := []struct {
		seconds int64
		want    models.CostEstimate
	}{
		{seconds: 4, want: models.CostEstimate{
			CallCost:        models.CallCost{CostLiveKit: 0.000667, CostSTT: 0.000393, CostTTS: 0.0018, CostLLM: 0.00276, TotalCostUSD: 0.0056, TotalCostINR: 0.47},
			DurationMinutes: 0.07,
		}},
		{seconds: 6, want: models.CostEstimate{
			CallCost:        models.CallCost{CostLiveKit: 0.001, CostSTT: 0.00059, CostTTS: 0.0027, CostLLM: 0.00276, TotalCostUSD: 0.007, TotalCostINR: 0.59},
			DurationMinutes: 0.1,
		}},
		{seconds: 7, want: models.CostEstimate{
			CallCost:        models.CallCost{CostLiveKit: 0.001167, CostSTT: 0.000688, CostTTS: 0.00315, CostLLM: 0.00276, TotalCostUSD: 0.0078, TotalCostINR: 0.64},
			DurationMinutes: 0.12,
		}},
		{seconds: 18, want: models.CostEstimate{
			CallCost:        models.CallCost{CostLiveKit: 0.003, CostSTT: 0.00177, CostTTS: 0.0081, CostLLM: 0.00276, TotalCostUSD: 0.0156, TotalCostINR: 1.3},
			DurationMinutes: 0.3,
		}},
		{seconds: 125, want: models.CostEstimate{
			CallCost:        models.CallCost{CostLiveKit: 0.020833, CostSTT: 0.012292, CostTTS: 0.05625, CostLLM: 0.00276, TotalCostUSD: 0.0921, TotalCostINR: 7.65},
			DurationMinutes: 2.08,
		}},
	}

	svc, _ := newTestCostService(t)
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%ds", tt.seconds), func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Calculate(tt.seconds))
		})
	}
}

func TestCostService_Calculate_UsesCurrentRate(t *testing.T) {
	svc, _ := newTestCostService(t)
	require.NoError(t, svc.SetUSDToINR(100))

	got := svc.Calculate(120)

	assert.InDelta(t, 8.86, got.TotalCostINR, 1e-9)
}

// ─────────────────────────────────────────────
// SetUSDToINR
// ─────────────────────────────────────────────

func TestCostService_SetUSDToINR(t *testing.T) {
	tests := []struct {
		name    string
		rate    float64
		wantErr bool
		want    float64
	}{
		{name: "valid", rate: 84.25, want: 84.25},
		{name: "zero", rate: 0, wantErr: true, want: 83},
		{name: "negative", rate: -1, wantErr: true, want: 83},
		{name: "nan", rate: math.NaN(), wantErr: true, want: 83},
		{name: "inf", rate: math.Inf(1), wantErr: true, want: 83},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestCostService(t)

			err := svc.SetUSDToINR(tt.rate)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidExchangeRate)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, svc.USDToINR())
		})
	}
}

// ─────────────────────────────────────────────
// Report
// ─────────────────────────────────────────────

func TestCostService_Report(t *testing.T) {
	svc, stats := newTestCostService(t)
	ctx := context.Background()

	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	stats.EXPECT().CostTotals(gomock.Any()).Return(models.CostTotals{
		LiveKit:       0.123456,
		STT:           0.07,
		TTS:           0.3,
		LLM:           0.01,
		USD:           1.5,
		INR:           124.456,
		DurationTotal: 600,
	}, nil)
	stats.EXPECT().WindowTotals(gomock.Any(), today).Return(models.WindowTotals{USD: 0.12346, INR: 10.256, Calls: 2}, nil)
	stats.EXPECT().WindowTotals(gomock.Any(), today.AddDate(0, 0, -7)).Return(models.WindowTotals{USD: 1, INR: 83, Calls: 9}, nil)
	stats.EXPECT().WindowTotals(gomock.Any(), today.AddDate(0, 0, -30)).Return(models.WindowTotals{USD: 1.5, INR: 124.5, Calls: 12}, nil)

	got, err := svc.Report(ctx)

	require.NoError(t, err)
	assert.InDelta(t, 0.1235, got.Breakdown.LiveKitSIP, 1e-9)
	assert.InDelta(t, 1.5, got.Totals.USD, 1e-9)
	assert.InDelta(t, 124.46, got.Totals.INR, 1e-9)
	assert.InDelta(t, 10.0, got.Totals.Minutes, 1e-9)
	assert.InDelta(t, 0.15, got.Totals.CostPerMinuteUSD, 1e-9)
	assert.InDelta(t, 12.45, got.Totals.CostPerMinuteINR, 0.005)
	assert.Equal(t, int64(2), got.Today.Calls)
	assert.InDelta(t, 0.1235, got.Today.USD, 1e-9)
	assert.InDelta(t, 10.26, got.Today.INR, 1e-9)
	assert.Equal(t, int64(9), got.Week.Calls)
	assert.Equal(t, int64(12), got.Month.Calls)
	assert.Equal(t, 83.0, got.USDToINR)
	assert.Equal(t, svc.Pricing(), got.Pricing)
	assert.Len(t, got.Tips, 4)
}

func TestCostService_Report_NoCalls(t *testing.T) {
	svc, stats := newTestCostService(t)

	stats.EXPECT().CostTotals(gomock.Any()).Return(models.CostTotals{}, nil)
	stats.EXPECT().WindowTotals(gomock.Any(), gomock.Any()).Return(models.WindowTotals{}, nil).Times(3)

	got, err := svc.Report(context.Background())

	require.NoError(t, err)
	assert.Zero(t, got.Totals.CostPerMinuteUSD)
	assert.Zero(t, got.Totals.Minutes)
}

func TestCostService_Report_StoreError(t *testing.T) {
	svc, stats := newTestCostService(t)

	stats.EXPECT().CostTotals(gomock.Any()).Return(models.CostTotals{}, store.ErrExecutingQuery)

	_, err := svc.Report(context.Background())

	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ─────────────────────────────────────────────
// windowStarts
// ─────────────────────────────────────────────

func TestWindowStarts_AlignedToUTCMidnight(t *testing.T) {
	local := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2026, 3, 11, 2, 0, 0, 0, local) // 2026-03-10 20:30 UTC

	today, week, month := windowStarts(now)

	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), today)
	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), week)
	assert.Equal(t, time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC), month)
}
