// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/models"
)

type transcriptRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTranscriptRepository constructs a [TranscriptRepository] backed by db.
func NewTranscriptRepository(db *DB, logger *logger.Logger) TranscriptRepository {
	logger.Debug().Msg("creating transcript repository")
	return &transcriptRepository{
		db:     db,
		logger: logger,
	}
}

// Add appends a message to a call's transcript. A call id without a call
// yields [ErrCallNotFound].
func (r *transcriptRepository) Add(ctx context.Context, message models.TranscriptMessage) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertTranscriptQuery(r.db.builder, message)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if r.db.errorClassificator.IsForeignKeyViolation(err) {
			return 0, ErrCallNotFound
		}
		log.Err(err).Str("func", "*transcriptRepository.Add").Int64("call_id", message.CallID).Msg("error inserting transcript message")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

// ListByCall returns the transcript of callID in chronological order.
func (r *transcriptRepository) ListByCall(ctx context.Context, callID int64) ([]models.TranscriptMessage, error) {
	query, args, err := buildListTranscriptQuery(r.db.builder, callID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.TranscriptMessage, 0)
	for rows.Next() {
		m := models.TranscriptMessage{CallID: callID}
		if err = rows.Scan(&m.ID, &m.Speaker, &m.Message, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		messages = append(messages, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}
