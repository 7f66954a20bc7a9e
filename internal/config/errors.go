// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates an unusable listen address or port.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a non-positive conversion rate).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidPricingConfigs indicates a negative provider price.
	ErrInvalidPricingConfigs = errors.New("invalid pricing configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative stale call age).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
