// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/voice-dashboard/internal/app"
)

var (
	// ErrInvalidID is returned when a path id is not a positive integer.
	ErrInvalidID = errors.New(app.MsgInvalidID)

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New(app.MsgInvalidDataProvided)

	// ErrUnauthorized is returned by the basic auth middleware.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTooManyRequests is returned by the dispatch rate limiter.
	ErrTooManyRequests = errors.New(app.MsgTooManyRequests)
)
