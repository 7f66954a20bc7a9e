// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/voice-dashboard/internal/app"
	"github.com/MKhiriev/voice-dashboard/internal/service"
	"github.com/MKhiriev/voice-dashboard/internal/store"
	"github.com/MKhiriev/voice-dashboard/internal/validators"
)

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "validation error",
			err:         &validators.Error{Err: validators.ErrPhoneTooShort},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Phone number looks too short",
		},
		{
			name:        "wrapped validation error with detail",
			err:         fmt.Errorf("validate: %w", &validators.Error{Err: validators.ErrUnknownField, Detail: "Unknown field: foo"}),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Unknown field: foo",
		},
		{
			name:        "duplicate phone",
			err:         fmt.Errorf("%w: %w", store.ErrContactAlreadyExists, errors.New("UNIQUE constraint failed")),
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgPhoneAlreadyExists,
		},
		{
			name:        "call not found",
			err:         store.ErrCallNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: app.MsgCallNotFound,
		},
		{
			name:        "dispatch failure echoes adapter",
			err:         fmt.Errorf("%w: %w", service.ErrDispatchFailed, errors.New("agent not found")),
			wantStatus:  http.StatusBadGateway,
			wantMessage: "call dispatch failed: agent not found",
		},
		{
			name:        "credentials missing",
			err:         service.ErrLiveKitCredentialsMissing,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgLiveKitCredentialsMissing,
		},
		{
			name:        "invalid json",
			err:         fmt.Errorf("%w: unexpected EOF", ErrInvalidJSON),
			wantStatus:  http.StatusBadRequest,
			wantMessage: ErrInvalidJSON.Error(),
		},
		{
			name:        "store sentinel wins over dispatch failure",
			err:         fmt.Errorf("%w: %w", service.ErrDispatchFailed, store.ErrCallNotFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: app.MsgCallNotFound,
		},
		{
			name:        "internal error hidden",
			err:         errors.New("database is locked"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := statusFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, messageFromError(tt.err, status))
		})
	}
}

func TestErrorMapping_StableForMultipleTargets(t *testing.T) {
	err := fmt.Errorf("%w: %w: %w", ErrTooManyRequests, service.ErrDispatchFailed, store.ErrContactNotFound)

	for range 50 {
		status := statusFromError(err)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, app.MsgContactNotFound, messageFromError(err, status))
	}
}
