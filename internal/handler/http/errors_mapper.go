// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/voice-dashboard/internal/app"
	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/internal/service"
	"github.com/MKhiriev/voice-dashboard/internal/store"
	"github.com/MKhiriev/voice-dashboard/internal/utils"
	"github.com/MKhiriev/voice-dashboard/internal/validators"
	"github.com/MKhiriev/voice-dashboard/models"
)

// errorMapping binds a sentinel to its HTTP status and, when the error's
// own text is not meant for the dashboard, to an operator-facing message.
type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is matched in order; the first target found in the chain wins.
var errorMappings = []errorMapping{
	{target: store.ErrContactAlreadyExists, status: http.StatusBadRequest, message: app.MsgPhoneAlreadyExists},
	{target: store.ErrContactNotFound, status: http.StatusNotFound, message: app.MsgContactNotFound},
	{target: store.ErrCallNotFound, status: http.StatusNotFound, message: app.MsgCallNotFound},

	{target: ErrInvalidID, status: http.StatusBadRequest},
	{target: ErrInvalidJSON, status: http.StatusBadRequest},
	{target: ErrUnauthorized, status: http.StatusUnauthorized},
	{target: ErrTooManyRequests, status: http.StatusTooManyRequests},

	{target: service.ErrLiveKitCredentialsMissing, status: http.StatusInternalServerError},
	{target: service.ErrDispatchFailed, status: http.StatusBadGateway},
	{target: service.ErrInvalidSettingKey, status: http.StatusBadRequest},
}

func lookupErrorMapping(err error) (errorMapping, bool) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m, true
		}
	}
	return errorMapping{}, false
}

func statusFromError(err error) int {
	var validationErr *validators.Error
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	if m, ok := lookupErrorMapping(err); ok {
		return m.status
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text written into the error envelope.
// Internal failures are not echoed back; LiveKit failures are, so the
// operator can fix credentials.
func messageFromError(err error, status int) string {
	if m, ok := lookupErrorMapping(err); ok && m.message != "" {
		return m.message
	}

	var validationErr *validators.Error
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Error()
	case errors.Is(err, ErrInvalidJSON):
		return ErrInvalidJSON.Error()
	case status == http.StatusInternalServerError && !errors.Is(err, service.ErrLiveKitCredentialsMissing):
		return app.MsgInternalServerError
	}
	return err.Error()
}

// writeError logs err and writes the JSON error envelope.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	utils.WriteJSON(w, models.ErrorResponse{Success: false, Error: messageFromError(err, status)}, status)
}
