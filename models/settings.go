// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SettingsField is one editable key of the runtime settings file.
type SettingsField struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Value       string   `json:"value"`
	Type        string   `json:"type"`
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty"`
}

// SettingsSection groups related settings fields on the settings page.
type SettingsSection struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Fields      []SettingsField `json:"fields"`
}

// ServiceStatus tells the dashboard whether calls can be placed.
type ServiceStatus struct {
	Configured      bool   `json:"configured"`
	LiveKitURL      string `json:"livekit_url"`
	TrunkConfigured bool   `json:"trunk_configured"`
	OutboundNumber  string `json:"outbound_number"`
}

// LiveKitCredentials are the values needed to talk to the LiveKit API.
type LiveKitCredentials struct {
	URL       string
	APIKey    string
	APISecret string
}

// Complete reports whether every credential is present.
func (c LiveKitCredentials) Complete() bool {
	return c.URL != "" && c.APIKey != "" && c.APISecret != ""
}
