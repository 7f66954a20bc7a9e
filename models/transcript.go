// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Transcript speakers. Any other value is stored as given.
const (
	SpeakerAgent   = "agent"
	SpeakerUser    = "user"
	SpeakerUnknown = "unknown"
)

// TranscriptMessage is one utterance of a call's conversation.
type TranscriptMessage struct {
	ID        int64     `json:"id"`
	CallID    int64     `json:"-"`
	Speaker   string    `json:"speaker"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
