// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON body written for every failed API request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MessageResponse acknowledges a write that returns nothing else.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CallDispatchResponse is the body of a successful POST /api/call.
type CallDispatchResponse struct {
	Success bool `json:"success"`
	DispatchResult
}

// CallsResponse is the body of GET /api/calls.
type CallsResponse struct {
	Success bool   `json:"success"`
	Calls   []Call `json:"calls"`
}

// ContactsResponse is the body of GET /api/contacts.
type ContactsResponse struct {
	Success  bool      `json:"success"`
	Contacts []Contact `json:"contacts"`
}

// ContactCreatedResponse is the body of POST /api/contacts.
type ContactCreatedResponse struct {
	Success   bool   `json:"success"`
	ContactID int64  `json:"contact_id"`
	Message   string `json:"message"`
}

// TranscriptResponse is the body of GET /api/transcripts/{id}.
type TranscriptResponse struct {
	Success    bool                `json:"success"`
	Transcript []TranscriptMessage `json:"transcript"`
	CallID     int64               `json:"call_id"`
}

// TranscriptCreatedResponse is the body of POST /api/transcripts/{id}.
type TranscriptCreatedResponse struct {
	Success      bool  `json:"success"`
	TranscriptID int64 `json:"transcript_id"`
}

// CostsResponse is the body of GET /api/costs.
type CostsResponse struct {
	Success bool       `json:"success"`
	Costs   CostReport `json:"costs"`
}

// AnalyticsResponse is the body of GET /api/analytics.
type AnalyticsResponse struct {
	Success   bool      `json:"success"`
	Analytics Analytics `json:"analytics"`
}

// SettingsResponse is the body of GET /api/settings.
type SettingsResponse struct {
	Success  bool                       `json:"success"`
	Settings map[string]SettingsSection `json:"settings"`
}

// AgentConfigResponse is the body of GET /api/agent.
type AgentConfigResponse struct {
	Success bool        `json:"success"`
	Config  AgentConfig `json:"config"`
}

// AgentTemplatesResponse is the body of GET /api/agent/templates.
type AgentTemplatesResponse struct {
	Success   bool            `json:"success"`
	Templates []AgentTemplate `json:"templates"`
}
