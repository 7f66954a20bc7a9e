// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/models"
)

type statsRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewStatsRepository constructs a [StatsRepository] backed by db.
func NewStatsRepository(db *DB, logger *logger.Logger) StatsRepository {
	logger.Debug().Msg("creating stats repository")
	return &statsRepository{
		db:     db,
		logger: logger,
	}
}

func (r *statsRepository) CostTotals(ctx context.Context) (models.CostTotals, error) {
	query, args, err := buildCostTotalsQuery(r.db.builder)
	if err != nil {
		return models.CostTotals{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var t models.CostTotals
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&t.LiveKit, &t.STT, &t.TTS, &t.LLM, &t.USD, &t.INR, &t.DurationTotal)
	if err != nil {
		return models.CostTotals{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return t, nil
}

func (r *statsRepository) WindowTotals(ctx context.Context, since time.Time) (models.WindowTotals, error) {
	query, args, err := buildWindowTotalsQuery(r.db.builder, since)
	if err != nil {
		return models.WindowTotals{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var w models.WindowTotals
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&w.USD, &w.INR, &w.Calls); err != nil {
		return models.WindowTotals{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return w, nil
}

func (r *statsRepository) CountCalls(ctx context.Context) (int64, error) {
	return r.count(ctx, callsTable)
}

func (r *statsRepository) CountContacts(ctx context.Context) (int64, error) {
	return r.count(ctx, contactsTable)
}

func (r *statsRepository) count(ctx context.Context, table string) (int64, error) {
	query, args, err := buildCountQuery(r.db.builder, table)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return n, nil
}

func (r *statsRepository) StatusCounts(ctx context.Context) (map[string]int64, error) {
	query, args, err := buildStatusCountsQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var (
			status string
			n      int64
		)
		if err = rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		counts[status] = n
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return counts, nil
}

func (r *statsRepository) DailyCounts(ctx context.Context, since time.Time) ([]models.DailyCount, error) {
	query, args, err := buildDailyCountsQuery(r.db.builder, since)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	days := make([]models.DailyCount, 0, 8)
	for rows.Next() {
		var d models.DailyCount
		if err = rows.Scan(&d.Date, &d.Count); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		days = append(days, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return days, nil
}
