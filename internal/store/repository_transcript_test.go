// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/models"
)

func newTestTranscriptRepo(t *testing.T) (*transcriptRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &transcriptRepository{db: db, logger: logger.Nop()}, mock
}

func TestTranscriptAdd(t *testing.T) {
	msg := models.TranscriptMessage{
		CallID:    3,
		Speaker:   models.SpeakerAgent,
		Message:   "Hello, this is Krish.",
		Timestamp: time.Date(2026, 3, 1, 10, 0, 5, 0, time.UTC),
	}

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestTranscriptRepo(t)
		mock.ExpectQuery("INSERT INTO transcripts").
			WithArgs(msg.CallID, msg.Speaker, msg.Message, msg.Timestamp).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		id, err := repo.Add(context.Background(), msg)
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
	})

	t.Run("unknown call", func(t *testing.T) {
		repo, mock := newTestTranscriptRepo(t)
		mock.ExpectQuery("INSERT INTO transcripts").
			WillReturnError(sqliteConstraint(sqlite3.ErrConstraintForeignKey))

		_, err := repo.Add(context.Background(), msg)
		require.ErrorIs(t, err, ErrCallNotFound)
	})
}

func TestTranscriptListByCall(t *testing.T) {
	repo, mock := newTestTranscriptRepo(t)
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT id, speaker, message, timestamp FROM transcripts WHERE call_id = \\? ORDER BY timestamp ASC, id ASC").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(transcriptColumns).
			AddRow(1, "agent", "Hi!", ts).
			AddRow(2, "user", "Who is this?", ts.Add(time.Second)))

	messages, err := repo.ListByCall(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "agent", messages[0].Speaker)
	assert.Equal(t, int64(3), messages[1].CallID)
}
