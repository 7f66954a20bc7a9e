// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/MKhiriev/voice-dashboard/internal/adapter"
	"github.com/MKhiriev/voice-dashboard/internal/app"
	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/internal/metrics"
	"github.com/MKhiriev/voice-dashboard/internal/store"
	"github.com/MKhiriev/voice-dashboard/internal/validators"
	"github.com/MKhiriev/voice-dashboard/models"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

// CallServiceDeps groups the collaborators of the call service.
type CallServiceDeps struct {
	Calls      store.CallRepository
	Contacts   store.ContactRepository
	Settings   SettingsService
	Costs      CostService
	Dispatcher adapter.DispatchAdapter
	Validator  validators.Validator
}

type callService struct {
	CallServiceDeps

	agentName string

	now        func() time.Time
	roomSuffix func() int

	logger *logger.Logger
}

func NewCallService(deps CallServiceDeps, agentName string, logger *logger.Logger) CallService {
	return &callService{
		CallServiceDeps: deps,
		agentName:       agentName,
		now:             utcNow,
		roomSuffix:      randomRoomSuffix,
		logger:          logger,
	}
}

func randomRoomSuffix() int {
	return 1000 + rand.IntN(9000)
}

func (s *callService) Dispatch(ctx context.Context, phoneNumber string) (models.DispatchResult, error) {
	log := logger.FromContext(ctx)

	phoneNumber = strings.TrimSpace(phoneNumber)
	if err := s.Validator.Validate(ctx, models.CallRequest{PhoneNumber: phoneNumber}); err != nil {
		metrics.RecordDispatch(metrics.DispatchInvalidRequest)
		return models.DispatchResult{}, err
	}

	creds, err := s.Settings.LiveKitCredentials(ctx)
	if err != nil {
		metrics.RecordDispatch(metrics.DispatchNotConfigured)
		return models.DispatchResult{}, err
	}
	if !creds.Complete() {
		metrics.RecordDispatch(metrics.DispatchNotConfigured)
		return models.DispatchResult{}, ErrLiveKitCredentialsMissing
	}

	room := fmt.Sprintf("call-%s-%d", strings.ReplaceAll(phoneNumber, "+", ""), s.roomSuffix())
	metadata, err := json.Marshal(models.DispatchMetadata{PhoneNumber: phoneNumber})
	if err != nil {
		return models.DispatchResult{}, fmt.Errorf("marshal dispatch metadata: %w", err)
	}

	dispatch, err := s.Dispatcher.CreateDispatch(ctx, creds, models.DispatchRequest{
		AgentName: s.agentName,
		Room:      room,
		Metadata:  string(metadata),
	})
	if err != nil {
		log.Err(err).Str("func", "*callService.Dispatch").Str("room", room).Msg("LiveKit rejected dispatch")
		metrics.RecordDispatch(metrics.DispatchRejected)
		return models.DispatchResult{}, fmt.Errorf("%w: %w", ErrDispatchFailed, err)
	}

	now := s.now()
	callID, err := s.Calls.Create(ctx, models.Call{
		PhoneNumber: phoneNumber,
		RoomName:    room,
		DispatchID:  dispatch.ID,
		Status:      models.CallStatusDialing,
		CreatedAt:   now,
	})
	if err != nil {
		log.Err(err).Str("func", "*callService.Dispatch").Str("dispatch_id", dispatch.ID).Msg("dispatched call was not recorded")
		metrics.RecordDispatch(metrics.DispatchStoreFailed)
		return models.DispatchResult{}, err
	}

	if err = s.Contacts.TouchLastCalled(ctx, phoneNumber, now); err != nil {
		log.Warn().Err(err).Str("func", "*callService.Dispatch").Msg("could not update contact last_called")
	}

	metrics.RecordDispatch(metrics.DispatchSucceeded)
	log.Info().Int64("call_id", callID).Str("room", room).Str("dispatch_id", dispatch.ID).Msg("call dispatched")

	return models.DispatchResult{
		CallID:      callID,
		DispatchID:  dispatch.ID,
		RoomName:    room,
		PhoneNumber: phoneNumber,
		Message:     app.MsgCallDispatched,
	}, nil
}

func (s *callService) History(ctx context.Context, limit int) ([]models.Call, error) {
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	return s.Calls.List(ctx, limit)
}

func (s *callService) Update(ctx context.Context, id int64, update models.CallUpdate) error {
	if err := s.Validator.Validate(ctx, update); err != nil {
		return err
	}

	if update.Duration != nil {
		estimate := s.Costs.Calculate(*update.Duration)
		update.Cost = &estimate.CallCost
	}
	if update.Status != nil && models.IsTerminalCallStatus(*update.Status) {
		endedAt := s.now()
		update.EndedAt = &endedAt
	}

	if update.IsEmpty() {
		return nil
	}

	return s.Calls.Update(ctx, id, update)
}

func (s *callService) CloseStale(ctx context.Context, age time.Duration) (int64, error) {
	now := s.now()
	return s.Calls.CloseStale(ctx, now.Add(-age), now)
}
