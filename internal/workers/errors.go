// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "errors"

var (
	// ErrInvalidSchedule is returned by Add for a malformed cron spec.
	ErrInvalidSchedule = errors.New("invalid worker schedule")

	// ErrExchangeRateFeed is returned when the rate feed answers with a
	// non-2xx status.
	ErrExchangeRateFeed = errors.New("exchange rate feed error")

	// ErrRateMissing is returned when the feed has no INR rate.
	ErrRateMissing = errors.New("INR rate missing from feed")
)
