// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/voice-dashboard/internal/logger"
)

func newTestStatsRepo(t *testing.T) (*statsRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &statsRepository{db: db, logger: logger.Nop()}, mock
}

func TestStatsCostTotals(t *testing.T) {
	repo, mock := newTestStatsRepo(t)

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(cost_livekit\\), 0\\)").
		WillReturnRows(sqlmock.NewRows([]string{"a", "b", "c", "d", "e", "f", "g"}).
			AddRow(0.1, 0.059, 0.27, 0.0137, 0.4427, 36.74, 600))

	totals, err := repo.CostTotals(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 0.4427, totals.USD, 1e-9)
	assert.Equal(t, int64(600), totals.DurationTotal)
}

func TestStatsWindowTotals(t *testing.T) {
	repo, mock := newTestStatsRepo(t)
	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM calls WHERE created_at >= \\?").
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"usd", "inr", "calls"}).AddRow(1.5, 124.5, 3))

	w, err := repo.WindowTotals(context.Background(), since)
	require.NoError(t, err)
	assert.Equal(t, int64(3), w.Calls)
	assert.InDelta(t, 124.5, w.INR, 1e-9)
}

func TestStatsCounts(t *testing.T) {
	repo, mock := newTestStatsRepo(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM calls").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM contacts").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	calls, err := repo.CountCalls(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), calls)

	contacts, err := repo.CountContacts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), contacts)
}

func TestStatsStatusCounts(t *testing.T) {
	repo, mock := newTestStatsRepo(t)

	mock.ExpectQuery("SELECT status, COUNT\\(\\*\\) FROM calls GROUP BY status").
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("completed", 5).
			AddRow("dialing", 2))

	counts, err := repo.StatusCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"completed": 5, "dialing": 2}, counts)
}

func TestStatsDailyCounts(t *testing.T) {
	repo, mock := newTestStatsRepo(t)
	since := time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("GROUP BY day ORDER BY day").
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"day", "count"}).
			AddRow("2026-02-24", 1).
			AddRow("2026-03-01", 3))

	days, err := repo.DailyCounts(context.Background(), since)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "2026-03-01", days[1].Date)
	assert.Equal(t, int64(3), days[1].Count)
}

func TestStatsDailyCounts_QueryError(t *testing.T) {
	repo, mock := newTestStatsRepo(t)
	mock.ExpectQuery("SELECT").WillReturnError(errors.New("boom"))

	_, err := repo.DailyCounts(context.Background(), time.Now())
	require.ErrorIs(t, err, ErrExecutingQuery)
}
