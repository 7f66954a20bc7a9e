// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/internal/service"
)

const staleCallWorkerName = "stale_calls"

// StaleCallSweeper closes calls that never left "dialing" because the
// agent process did not report back.
type StaleCallSweeper struct {
	calls  service.CallService
	age    time.Duration
	logger *logger.Logger
}

func NewStaleCallSweeper(calls service.CallService, age time.Duration, logger *logger.Logger) *StaleCallSweeper {
	return &StaleCallSweeper{calls: calls, age: age, logger: logger}
}

func (s *StaleCallSweeper) Name() string { return staleCallWorkerName }

func (s *StaleCallSweeper) Run(ctx context.Context) error {
	closed, err := s.calls.CloseStale(ctx, s.age)
	if err != nil {
		return err
	}
	if closed > 0 {
		s.logger.Info().Int64("closed", closed).Dur("age", s.age).Msg("stale calls closed")
	}
	return nil
}
