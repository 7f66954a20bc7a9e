// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound client for LiveKit.
//
// The primary abstraction is [DispatchAdapter], which decouples the call
// service from the LiveKit server API. The package ships a Twirp/JSON
// implementation over resty ([NewLiveKitAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g.
// [ErrLiveKitUnauthorized] for 401 and 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/voice-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_adapter.go -package=mock

// DispatchAdapter sends a calling agent into a LiveKit room.
type DispatchAdapter interface {
	// CreateDispatch asks the LiveKit server at creds.URL to dispatch
	// req.AgentName into req.Room. Credentials are passed per call because
	// the operator may change them at runtime from the settings page.
	CreateDispatch(ctx context.Context, creds models.LiveKitCredentials, req models.DispatchRequest) (models.Dispatch, error)
}
