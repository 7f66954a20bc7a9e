// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/voice-dashboard/internal/app"
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrLiveKitCredentialsMissing is returned by Dispatch when the LiveKit
	// URL, API key or API secret is not set.
	ErrLiveKitCredentialsMissing = errors.New(app.MsgLiveKitCredentialsMissing)

	// ErrDispatchFailed wraps any adapter failure during Dispatch.
	ErrDispatchFailed = errors.New("call dispatch failed")

	// ErrInvalidExchangeRate is returned for a non-positive USD to INR rate.
	ErrInvalidExchangeRate = errors.New("exchange rate must be positive")

	// ErrInvalidSettingKey is returned when a settings key cannot be stored
	// in a dotenv file.
	ErrInvalidSettingKey = errors.New("invalid settings key")
)
