// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/voice-dashboard/internal/app"
	"github.com/MKhiriev/voice-dashboard/internal/utils"
	"github.com/MKhiriev/voice-dashboard/models"
)

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.services.SettingsService.Settings(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getSettings", err)
		return
	}

	utils.WriteJSON(w, models.SettingsResponse{Success: true, Settings: settings}, http.StatusOK)
}

// saveSettings accepts a flat JSON object. Strings are stored as is, other
// scalars in their JSON form and nulls are skipped.
func (h *Handler) saveSettings(w http.ResponseWriter, r *http.Request) {
	var raw map[string]json.RawMessage
	if err := decodeBody(r, &raw); err != nil {
		writeError(w, r, "*Handler.saveSettings", err)
		return
	}

	values := make(map[string]*string, len(raw))
	for key, msg := range raw {
		values[key] = settingValue(msg)
	}

	if err := h.services.SettingsService.Save(r.Context(), values); err != nil {
		writeError(w, r, "*Handler.saveSettings", err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Success: true, Message: app.MsgSettingsSaved}, http.StatusOK)
}

func settingValue(msg json.RawMessage) *string {
	if string(msg) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(msg, &s); err == nil {
		return &s
	}

	s = string(msg)
	return &s
}

// getStatus answers without the success envelope; the dashboard header
// polls it directly.
func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.SettingsService.Status(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getStatus", err)
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}
