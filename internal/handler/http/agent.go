// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/voice-dashboard/internal/app"
	"github.com/MKhiriev/voice-dashboard/internal/utils"
	"github.com/MKhiriev/voice-dashboard/models"
)

func (h *Handler) getAgentConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.services.AgentService.Config(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getAgentConfig", err)
		return
	}

	utils.WriteJSON(w, models.AgentConfigResponse{Success: true, Config: cfg}, http.StatusOK)
}

func (h *Handler) saveAgentConfig(w http.ResponseWriter, r *http.Request) {
	var update models.AgentConfigUpdate
	if err := decodeBody(r, &update); err != nil {
		writeError(w, r, "*Handler.saveAgentConfig", err)
		return
	}

	if err := h.services.AgentService.Save(r.Context(), update); err != nil {
		writeError(w, r, "*Handler.saveAgentConfig", err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Success: true, Message: app.MsgAgentConfigSaved}, http.StatusOK)
}

func (h *Handler) getAgentTemplates(w http.ResponseWriter, r *http.Request) {
	templates := h.services.AgentService.Templates(r.Context())
	utils.WriteJSON(w, models.AgentTemplatesResponse{Success: true, Templates: templates}, http.StatusOK)
}
