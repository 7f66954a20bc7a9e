// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/voice-dashboard/internal/config"
	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/internal/metrics"
	"github.com/MKhiriev/voice-dashboard/internal/store"
	"github.com/MKhiriev/voice-dashboard/internal/utils"
	"github.com/MKhiriev/voice-dashboard/models"
)

var costSavingTips = []string{
	"Use shorter prompts to reduce LLM token costs",
	"Upgrade to Deepgram Growth Plan for 15% discount",
	"Keep calls concise - every minute costs ~$0.045 (₹3.75)",
	"Use Nova-2 instead of Nova-3 for STT to save 25%",
}

type costService struct {
	stats   store.StatsRepository
	pricing models.Pricing

	// usdToINR holds math.Float64bits of the current rate.
	usdToINR atomic.Uint64

	now func() time.Time

	logger *logger.Logger
}

func NewCostService(stats store.StatsRepository, pricing config.Pricing, usdToINR float64, logger *logger.Logger) CostService {
	s := &costService{
		stats: stats,
		pricing: models.Pricing{
			LiveKitSIP:       pricing.LiveKitSIP,
			DeepgramSTT:      pricing.DeepgramSTT,
			DeepgramTTS:      pricing.DeepgramTTS,
			GroqInput:        pricing.GroqInput,
			GroqOutput:       pricing.GroqOutput,
			AvgTokensPerCall: pricing.AvgTokensPerCall,
		},
		now:    utcNow,
		logger: logger,
	}
	s.usdToINR.Store(math.Float64bits(usdToINR))
	metrics.SetUSDToINR(usdToINR)

	return s
}

// Calculate prices a call of durationSeconds. Every output is rounded on
// its own from the unrounded amounts: components to 6 places, the USD
// total to 4, the INR total and minutes to 2.
func (s *costService) Calculate(durationSeconds int64) models.CostEstimate {
	minutes := float64(durationSeconds) / 60
	p := s.pricing

	livekit := p.LiveKitSIP * minutes
	stt := p.DeepgramSTT * minutes
	tts := p.DeepgramTTS * minutes
	tokens := float64(p.AvgTokensPerCall)
	llm := tokens*p.GroqInput + tokens*p.GroqOutput

	usd := livekit + stt + tts + llm

	return models.CostEstimate{
		CallCost: models.CallCost{
			CostLiveKit:  utils.Round(livekit, 6),
			CostSTT:      utils.Round(stt, 6),
			CostTTS:      utils.Round(tts, 6),
			CostLLM:      utils.Round(llm, 6),
			TotalCostUSD: utils.Round(usd, 4),
			TotalCostINR: utils.Round(usd*s.USDToINR(), 2),
		},
		DurationMinutes: utils.Round(minutes, 2),
	}
}

func (s *costService) Report(ctx context.Context) (models.CostReport, error) {
	totals, err := s.stats.CostTotals(ctx)
	if err != nil {
		return models.CostReport{}, err
	}

	todayStart, weekStart, monthStart := windowStarts(s.now())
	today, err := s.window(ctx, todayStart)
	if err != nil {
		return models.CostReport{}, err
	}
	week, err := s.window(ctx, weekStart)
	if err != nil {
		return models.CostReport{}, err
	}
	month, err := s.window(ctx, monthStart)
	if err != nil {
		return models.CostReport{}, err
	}

	rate := s.USDToINR()
	minutes := float64(totals.DurationTotal) / 60
	var perMinute float64
	if minutes > 0 {
		perMinute = totals.USD / minutes
	}

	return models.CostReport{
		Breakdown: models.CostBreakdown{
			LiveKitSIP:  utils.Round(totals.LiveKit, 4),
			DeepgramSTT: utils.Round(totals.STT, 4),
			DeepgramTTS: utils.Round(totals.TTS, 4),
			GroqLLM:     utils.Round(totals.LLM, 4),
		},
		Totals: models.CostReportTotals{
			USD:              utils.Round(totals.USD, 4),
			INR:              utils.Round(totals.INR, 2),
			Minutes:          utils.Round(minutes, 2),
			CostPerMinuteUSD: utils.Round(perMinute, 4),
			CostPerMinuteINR: utils.Round(perMinute*rate, 2),
		},
		Today:    today,
		Week:     week,
		Month:    month,
		Pricing:  s.pricing,
		USDToINR: rate,
		Tips:     append([]string(nil), costSavingTips...),
	}, nil
}

// window reads the totals of calls created since the given instant,
// rounded for display.
func (s *costService) window(ctx context.Context, since time.Time) (models.WindowTotals, error) {
	w, err := s.stats.WindowTotals(ctx, since)
	if err != nil {
		return models.WindowTotals{}, err
	}
	w.USD = utils.Round(w.USD, 4)
	w.INR = utils.Round(w.INR, 2)
	return w, nil
}

func (s *costService) Pricing() models.Pricing {
	return s.pricing
}

func (s *costService) USDToINR() float64 {
	return math.Float64frombits(s.usdToINR.Load())
}

// SetUSDToINR replaces the conversion rate used by later calculations.
// Stored call costs are not recomputed.
func (s *costService) SetUSDToINR(rate float64) error {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return ErrInvalidExchangeRate
	}

	old := math.Float64frombits(s.usdToINR.Swap(math.Float64bits(rate)))
	metrics.SetUSDToINR(rate)
	if old != rate {
		s.logger.Info().Float64("old", old).Float64("new", rate).Msg("USD to INR rate updated")
	}
	return nil
}
