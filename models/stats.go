// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CostTotals are the sums of every cost column over the whole call log.
type CostTotals struct {
	LiveKit       float64
	STT           float64
	TTS           float64
	LLM           float64
	USD           float64
	INR           float64
	DurationTotal int64
}

// WindowTotals are cost sums and call count of calls created after a cutoff.
type WindowTotals struct {
	USD   float64 `json:"usd"`
	INR   float64 `json:"inr"`
	Calls int64   `json:"calls"`
}

// DailyCount is the number of calls created on Date (YYYY-MM-DD, UTC).
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// CostBreakdown is the per-provider part of [CostReport].
type CostBreakdown struct {
	LiveKitSIP  float64 `json:"livekit_sip"`
	DeepgramSTT float64 `json:"deepgram_stt"`
	DeepgramTTS float64 `json:"deepgram_tts"`
	GroqLLM     float64 `json:"groq_llm"`
}

// CostReportTotals is the all-time part of [CostReport].
type CostReportTotals struct {
	USD              float64 `json:"usd"`
	INR              float64 `json:"inr"`
	Minutes          float64 `json:"minutes"`
	CostPerMinuteUSD float64 `json:"cost_per_minute_usd"`
	CostPerMinuteINR float64 `json:"cost_per_minute_inr"`
}

// CostReport is served by GET /api/costs.
type CostReport struct {
	Breakdown CostBreakdown    `json:"breakdown"`
	Totals    CostReportTotals `json:"totals"`
	Today     WindowTotals     `json:"today"`
	Week      WindowTotals     `json:"week"`
	Month     WindowTotals     `json:"month"`
	Pricing   Pricing          `json:"pricing"`
	USDToINR  float64          `json:"usd_to_inr"`
	Tips      []string         `json:"tips"`
}

// Analytics is served by GET /api/analytics.
type Analytics struct {
	TotalCalls    int64            `json:"total_calls"`
	TodayCalls    int64            `json:"today_calls"`
	WeekCalls     int64            `json:"week_calls"`
	MonthCalls    int64            `json:"month_calls"`
	StatusCounts  map[string]int64 `json:"status_counts"`
	DailyCalls    []DailyCount     `json:"daily_calls"`
	TotalContacts int64            `json:"total_contacts"`

	TodayCostUSD float64 `json:"today_cost_usd"`
	TodayCostINR float64 `json:"today_cost_inr"`
	WeekCostUSD  float64 `json:"week_cost_usd"`
	WeekCostINR  float64 `json:"week_cost_inr"`
	MonthCostUSD float64 `json:"month_cost_usd"`
	MonthCostINR float64 `json:"month_cost_inr"`
	TotalCostUSD float64 `json:"total_cost_usd"`
	TotalCostINR float64 `json:"total_cost_inr"`

	Pricing  Pricing `json:"pricing"`
	USDToINR float64 `json:"usd_to_inr"`
}
