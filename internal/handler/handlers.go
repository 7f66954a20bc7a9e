// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"context"

	"github.com/MKhiriev/voice-dashboard/internal/config"
	"github.com/MKhiriev/voice-dashboard/internal/handler/grpc"
	"github.com/MKhiriev/voice-dashboard/internal/handler/http"
	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds a transport handler for every configured address.
// healthCheck is shared by GET /healthz and the gRPC health service.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, healthCheck func(ctx context.Context) error, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		h, err := http.NewHandler(services, cfg, healthCheck, logger)
		if err != nil {
			return nil, err
		}
		handlers.HTTP = h
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(healthCheck, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
