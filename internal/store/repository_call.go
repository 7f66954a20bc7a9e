// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/models"
)

// callRepository is the SQL implementation of [CallRepository] over the
// "calls" table.
type callRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCallRepository constructs a [CallRepository] backed by db.
func NewCallRepository(db *DB, logger *logger.Logger) CallRepository {
	logger.Debug().Msg("creating call repository")
	return &callRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a call and returns its id.
func (r *callRepository) Create(ctx context.Context, call models.Call) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCallQuery(r.db.builder, call)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "*callRepository.Create").Msg("error inserting call")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

// List returns up to limit calls, newest first.
func (r *callRepository) List(ctx context.Context, limit int) ([]models.Call, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCallsQuery(r.db.builder, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*callRepository.List").Msg("error selecting calls")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	calls := make([]models.Call, 0, limit)
	for rows.Next() {
		call, err := scanCall(rows)
		if err != nil {
			log.Err(err).Str("func", "*callRepository.List").Msg("error scanning call")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		calls = append(calls, call)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return calls, nil
}

// Update applies a partial update and returns [ErrCallNotFound] when no call
// has the given id.
func (r *callRepository) Update(ctx context.Context, id int64, update models.CallUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCallQuery(r.db.builder, id, update)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*callRepository.Update").Int64("call_id", id).Msg("error updating call")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res, ErrCallNotFound)
}

// CloseStale closes calls that are still dialing and were created before
// cutoff.
func (r *callRepository) CloseStale(ctx context.Context, cutoff, endedAt time.Time) (int64, error) {
	query, args, err := buildCloseStaleCallsQuery(r.db.builder, cutoff, endedAt)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCall(row rowScanner) (models.Call, error) {
	var (
		call       models.Call
		roomName   sql.NullString
		dispatchID sql.NullString
		notes      sql.NullString
		endedAt    sql.NullTime
	)

	err := row.Scan(
		&call.ID, &call.PhoneNumber, &roomName, &dispatchID, &call.Status, &call.Duration, &notes,
		&call.CreatedAt, &endedAt,
		&call.CostLiveKit, &call.CostSTT, &call.CostTTS, &call.CostLLM, &call.TotalCostUSD, &call.TotalCostINR,
	)
	if err != nil {
		return models.Call{}, err
	}

	call.RoomName = roomName.String
	call.DispatchID = dispatchID.String
	call.Notes = notes.String
	if endedAt.Valid {
		t := endedAt.Time
		call.EndedAt = &t
	}

	return call, nil
}

// expectAffected returns notFound when res reports zero affected rows.
func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
