// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DispatchRequest asks LiveKit to send a named agent into a room.
type DispatchRequest struct {
	AgentName string `json:"agent_name"`
	Room      string `json:"room"`
	Metadata  string `json:"metadata,omitempty"`
}

// Dispatch is LiveKit's record of an agent dispatch.
type Dispatch struct {
	ID        string `json:"id"`
	AgentName string `json:"agent_name"`
	Room      string `json:"room"`
	Metadata  string `json:"metadata"`
}

// DispatchMetadata is the JSON metadata handed to the calling agent.
type DispatchMetadata struct {
	PhoneNumber string `json:"phone_number"`
}
