// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/internal/store"
	"github.com/MKhiriev/voice-dashboard/internal/utils"
	"github.com/MKhiriev/voice-dashboard/models"
)

type analyticsService struct {
	stats store.StatsRepository
	costs CostService

	now func() time.Time

	logger *logger.Logger
}

func NewAnalyticsService(stats store.StatsRepository, costs CostService, logger *logger.Logger) AnalyticsService {
	return &analyticsService{
		stats:  stats,
		costs:  costs,
		now:    utcNow,
		logger: logger,
	}
}

func (s *analyticsService) Analytics(ctx context.Context) (models.Analytics, error) {
	var (
		result models.Analytics
		err    error
	)

	todayStart, weekStart, monthStart := windowStarts(s.now())

	if result.TotalCalls, err = s.stats.CountCalls(ctx); err != nil {
		return models.Analytics{}, err
	}

	today, err := s.stats.WindowTotals(ctx, todayStart)
	if err != nil {
		return models.Analytics{}, err
	}
	week, err := s.stats.WindowTotals(ctx, weekStart)
	if err != nil {
		return models.Analytics{}, err
	}
	month, err := s.stats.WindowTotals(ctx, monthStart)
	if err != nil {
		return models.Analytics{}, err
	}

	if result.StatusCounts, err = s.stats.StatusCounts(ctx); err != nil {
		return models.Analytics{}, err
	}
	if result.DailyCalls, err = s.stats.DailyCounts(ctx, weekStart); err != nil {
		return models.Analytics{}, err
	}
	if result.TotalContacts, err = s.stats.CountContacts(ctx); err != nil {
		return models.Analytics{}, err
	}

	totals, err := s.stats.CostTotals(ctx)
	if err != nil {
		return models.Analytics{}, err
	}

	if result.StatusCounts == nil {
		result.StatusCounts = map[string]int64{}
	}
	if result.DailyCalls == nil {
		result.DailyCalls = []models.DailyCount{}
	}

	result.TodayCalls = today.Calls
	result.WeekCalls = week.Calls
	result.MonthCalls = month.Calls

	result.TodayCostUSD, result.TodayCostINR = utils.Round(today.USD, 4), utils.Round(today.INR, 2)
	result.WeekCostUSD, result.WeekCostINR = utils.Round(week.USD, 4), utils.Round(week.INR, 2)
	result.MonthCostUSD, result.MonthCostINR = utils.Round(month.USD, 4), utils.Round(month.INR, 2)
	result.TotalCostUSD, result.TotalCostINR = utils.Round(totals.USD, 4), utils.Round(totals.INR, 2)

	result.Pricing = s.costs.Pricing()
	result.USDToINR = s.costs.USDToINR()

	return result, nil
}
