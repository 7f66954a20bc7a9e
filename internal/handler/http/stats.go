// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/voice-dashboard/internal/utils"
	"github.com/MKhiriev/voice-dashboard/models"
)

func (h *Handler) getCosts(w http.ResponseWriter, r *http.Request) {
	report, err := h.services.CostService.Report(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getCosts", err)
		return
	}

	utils.WriteJSON(w, models.CostsResponse{Success: true, Costs: report}, http.StatusOK)
}

func (h *Handler) getAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.services.AnalyticsService.Analytics(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getAnalytics", err)
		return
	}

	utils.WriteJSON(w, models.AnalyticsResponse{Success: true, Analytics: analytics}, http.StatusOK)
}
