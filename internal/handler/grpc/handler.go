// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/MKhiriev/voice-dashboard/internal/logger"
)

// ServiceName is the name reported to gRPC health clients for the dashboard.
const ServiceName = "voice.dashboard"

// DefaultProbeInterval is how often the storage is pinged to refresh the
// serving status.
const DefaultProbeInterval = 15 * time.Second

// HealthChecker reports whether the backing storage is reachable.
type HealthChecker func(ctx context.Context) error

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1 service. The serving status follows
// the result of the storage probe so orchestrators talking gRPC see the same
// picture as GET /healthz.
type Handler struct {
	health *health.Server
	check  HealthChecker

	interval time.Duration
	logger   *logger.Logger
}

// NewHandler constructs a [Handler] driven by check. A nil check keeps the
// service permanently SERVING.
func NewHandler(check HealthChecker, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	h := &Handler{
		health:   health.NewServer(),
		check:    check,
		interval: DefaultProbeInterval,
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
	return h
}

// Register attaches the health and reflection services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// Probe runs the storage check once and updates the serving status.
func (h *Handler) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if h.check != nil {
		if err := h.check(ctx); err != nil {
			h.logger.Err(err).Str("func", "*Handler.Probe").Msg("storage probe failed")
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}
	h.setStatus(status)
	return status
}

// Watch probes the storage every interval until ctx is done.
func (h *Handler) Watch(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, h.interval)
			h.Probe(probeCtx)
			cancel()
		}
	}
}

// Shutdown flips every service to NOT_SERVING so clients drain before the
// listener goes away.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	// the empty name is the overall server status
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
