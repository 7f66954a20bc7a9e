// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"

	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/internal/store"
	"github.com/MKhiriev/voice-dashboard/models"
)

type agentService struct {
	storage store.AgentStorage

	logger *logger.Logger
}

func NewAgentService(storage store.AgentStorage, logger *logger.Logger) AgentService {
	return &agentService{
		storage: storage,
		logger:  logger,
	}
}

func (s *agentService) Config(ctx context.Context) (models.AgentConfig, error) {
	return s.storage.Load(ctx)
}

func (s *agentService) Save(ctx context.Context, update models.AgentConfigUpdate) error {
	current, err := s.storage.Load(ctx)
	if err != nil {
		return err
	}

	if update.SystemPrompt != nil {
		current.SystemPrompt = *update.SystemPrompt
	}
	if update.InitialGreeting != nil {
		current.InitialGreeting = *update.InitialGreeting
	}
	if update.FallbackGreeting != nil {
		current.FallbackGreeting = *update.FallbackGreeting
	}

	if err = s.storage.Save(ctx, current); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Msg("agent persona saved")
	return nil
}

func (s *agentService) Templates(ctx context.Context) []models.AgentTemplate {
	return slices.Clone(agentTemplates)
}
