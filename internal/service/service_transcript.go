// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/internal/store"
	"github.com/MKhiriev/voice-dashboard/internal/validators"
	"github.com/MKhiriev/voice-dashboard/models"
)

type transcriptService struct {
	transcripts store.TranscriptRepository
	validator   validators.Validator

	now func() time.Time

	logger *logger.Logger
}

func NewTranscriptService(transcripts store.TranscriptRepository, validator validators.Validator, logger *logger.Logger) TranscriptService {
	return &transcriptService{
		transcripts: transcripts,
		validator:   validator,
		now:         utcNow,
		logger:      logger,
	}
}

// Add appends a message to the call transcript. An empty speaker is stored
// as "unknown".
func (s *transcriptService) Add(ctx context.Context, message models.TranscriptMessage) (int64, error) {
	if err := s.validator.Validate(ctx, message); err != nil {
		return 0, err
	}

	message.Speaker = strings.TrimSpace(message.Speaker)
	if message.Speaker == "" {
		message.Speaker = models.SpeakerUnknown
	}
	message.Timestamp = s.now()

	return s.transcripts.Add(ctx, message)
}

func (s *transcriptService) List(ctx context.Context, callID int64) ([]models.TranscriptMessage, error) {
	messages, err := s.transcripts.ListByCall(ctx, callID)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []models.TranscriptMessage{}
	}
	return messages, nil
}
