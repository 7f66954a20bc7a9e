// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// voice-dashboard services and handlers.
//
// All Msg* constants are operator-facing strings written into JSON response
// bodies. Keeping them in one place keeps the dashboard's wording consistent.
package app

const (
	// MsgCallDispatched acknowledges a successful outbound call dispatch.
	MsgCallDispatched = "Call dispatched successfully! The agent is now dialing."

	// MsgCallUpdated acknowledges PUT /api/calls/{id}.
	MsgCallUpdated = "Call updated"

	// MsgSettingsSaved acknowledges POST /api/settings.
	MsgSettingsSaved = "Settings saved successfully! Restart agent to apply changes."

	// MsgAgentConfigSaved acknowledges POST /api/agent.
	MsgAgentConfigSaved = "Agent configuration saved! Restart agent to apply changes."

	// MsgContactAdded acknowledges POST /api/contacts.
	MsgContactAdded = "Contact added!"

	// MsgContactUpdated acknowledges PUT /api/contacts/{id}.
	MsgContactUpdated = "Contact updated!"

	// MsgContactDeleted acknowledges DELETE /api/contacts/{id}.
	MsgContactDeleted = "Contact deleted!"
)

const (
	// MsgNotConfigured replaces unset values in GET /api/status.
	MsgNotConfigured = "Not configured"

	// MsgLiveKitCredentialsMissing is returned when a call is requested
	// before the LiveKit URL, key and secret are saved.
	MsgLiveKitCredentialsMissing = "LiveKit credentials missing in Settings"

	// MsgPhoneAlreadyExists is returned when a contact reuses a number.
	MsgPhoneAlreadyExists = "Phone number already exists"

	// MsgContactNotFound is returned for an unknown contact id.
	MsgContactNotFound = "Contact not found"

	// MsgCallNotFound is returned for an unknown call id.
	MsgCallNotFound = "Call not found"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidID is returned when a path id is not a positive integer.
	MsgInvalidID = "invalid id"

	// MsgTooManyRequests is returned by the dispatch rate limiter.
	MsgTooManyRequests = "Too many call requests, please wait a moment"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the operator cannot resolve.
	MsgInternalServerError = "internal server error"
)
