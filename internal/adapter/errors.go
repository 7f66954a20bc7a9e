// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrInvalidLiveKitURL is returned when the configured LiveKit URL cannot
	// be turned into an API base URL.
	ErrInvalidLiveKitURL = errors.New("invalid LiveKit URL")

	// ErrLiveKitUnauthorized is returned when LiveKit rejects the API key or
	// token (401 or 403).
	ErrLiveKitUnauthorized = errors.New("LiveKit rejected the API credentials")

	// ErrDispatchRejected is returned for any other non-2xx answer.
	ErrDispatchRejected = errors.New("LiveKit rejected the dispatch")

	// ErrLiveKitUnavailable is returned when LiveKit cannot be reached.
	ErrLiveKitUnavailable = errors.New("LiveKit is unavailable")
)
