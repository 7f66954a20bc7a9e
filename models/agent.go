// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AgentConfig is the persona the calling agent speaks with.
type AgentConfig struct {
	SystemPrompt     string `json:"system_prompt" yaml:"system_prompt"`
	InitialGreeting  string `json:"initial_greeting" yaml:"initial_greeting"`
	FallbackGreeting string `json:"fallback_greeting" yaml:"fallback_greeting"`
}

// AgentConfigUpdate is a partial persona update; nil fields are kept.
type AgentConfigUpdate struct {
	SystemPrompt     *string `json:"system_prompt,omitempty"`
	InitialGreeting  *string `json:"initial_greeting,omitempty"`
	FallbackGreeting *string `json:"fallback_greeting,omitempty"`
}

// AgentTemplate is a ready-made persona the operator can start from.
type AgentTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	AgentConfig
}
