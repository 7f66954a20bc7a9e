// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Pricing holds provider prices in USD. Per-minute prices apply to the
// call duration; token prices apply to AvgTokensPerCall once per call.
type Pricing struct {
	LiveKitSIP       float64 `json:"livekit_sip"`
	DeepgramSTT      float64 `json:"deepgram_stt"`
	DeepgramTTS      float64 `json:"deepgram_tts"`
	GroqInput        float64 `json:"groq_input"`
	GroqOutput       float64 `json:"groq_output"`
	AvgTokensPerCall int     `json:"avg_tokens_per_call"`
}
