// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the dashboard's
// requests: outbound call numbers, contacts, transcript messages and call
// updates.
//
// Usage patterns:
//  1. Inject a Validator into a service.
//  2. Call Validate with context, value, and optional field names to enforce rules.
//  3. Match failures with errors.Is against the sentinels in errors.go, or
//     errors.As into *Error for an operator-facing message.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
