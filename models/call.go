// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Call statuses written by the dashboard and by the calling agent.
// Status is free text in storage; these are the values the dashboard
// itself reasons about.
const (
	CallStatusInitiated = "initiated"
	CallStatusDialing   = "dialing"
	CallStatusCompleted = "completed"
	CallStatusFailed    = "failed"
	CallStatusNoAnswer  = "no_answer"
)

// IsTerminalCallStatus reports whether status closes a call, i.e. the
// call's ended_at timestamp must be set when it is reached.
func IsTerminalCallStatus(status string) bool {
	switch status {
	case CallStatusCompleted, CallStatusFailed, CallStatusNoAnswer:
		return true
	default:
		return false
	}
}

// Call is a single outbound call as recorded in the call log.
type Call struct {
	ID          int64      `json:"id"`
	PhoneNumber string     `json:"phone_number"`
	RoomName    string     `json:"room_name"`
	DispatchID  string     `json:"dispatch_id,omitempty"`
	Status      string     `json:"status"`
	Duration    int64      `json:"duration"`
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `json:"created_at"`
	EndedAt     *time.Time `json:"ended_at"`

	CallCost
}

// CallCost is the stored cost breakdown of a call.
type CallCost struct {
	CostLiveKit  float64 `json:"cost_livekit"`
	CostSTT      float64 `json:"cost_stt"`
	CostTTS      float64 `json:"cost_tts"`
	CostLLM      float64 `json:"cost_llm"`
	TotalCostUSD float64 `json:"total_cost_usd"`
	TotalCostINR float64 `json:"total_cost_inr"`
}

// CostEstimate is a [CallCost] together with the billed duration in minutes.
type CostEstimate struct {
	CallCost
	DurationMinutes float64 `json:"duration_minutes"`
}

// CallUpdate is a partial update of a call. Nil fields are left untouched.
type CallUpdate struct {
	Status   *string `json:"status,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	Duration *int64  `json:"duration,omitempty"`

	// Cost is filled by the service whenever Duration is set.
	Cost *CallCost `json:"-"`
	// EndedAt is filled by the service when Status is terminal.
	EndedAt *time.Time `json:"-"`
}

// IsEmpty reports whether the update carries no column changes.
func (u CallUpdate) IsEmpty() bool {
	return u.Status == nil && u.Notes == nil && u.Duration == nil && u.Cost == nil && u.EndedAt == nil
}

// DispatchResult is returned to the operator once a call was handed to the
// calling agent.
type DispatchResult struct {
	CallID      int64  `json:"call_id"`
	DispatchID  string `json:"dispatch_id"`
	RoomName    string `json:"room_name"`
	PhoneNumber string `json:"phone_number"`
	Message     string `json:"message"`
}

// CallRequest is the body of POST /api/call.
type CallRequest struct {
	PhoneNumber string `json:"phone_number"`
}
