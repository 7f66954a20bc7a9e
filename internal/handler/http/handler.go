// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"

	"github.com/MKhiriev/voice-dashboard/internal/config"
	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/internal/service"
)

// HealthChecker reports whether the backing storage is reachable.
type HealthChecker func(ctx context.Context) error

type Handler struct {
	services *service.Services

	pages           pageSet
	dispatchLimiter *rateLimiter
	healthCheck     HealthChecker

	adminUser         string
	adminPasswordHash string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, healthCheck HealthChecker, logger *logger.Logger) (*Handler, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:          services,
		pages:             pages,
		dispatchLimiter:   newRateLimiter(cfg.Server.DispatchRateLimit, cfg.Server.DispatchBurst),
		healthCheck:       healthCheck,
		adminUser:         cfg.App.AdminUser,
		adminPasswordHash: cfg.App.AdminPasswordHash,
		logger:            logger,
	}, nil
}
