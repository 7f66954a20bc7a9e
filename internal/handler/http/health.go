// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/internal/utils"
)

type healthResponse struct {
	Status string `json:"status"`
}

// healthz reports 503 while the database is unreachable.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if h.healthCheck != nil {
		if err := h.healthCheck(r.Context()); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.healthz").Msg("health check failed")
			utils.WriteJSON(w, healthResponse{Status: "unavailable"}, http.StatusServiceUnavailable)
			return
		}
	}

	utils.WriteJSON(w, healthResponse{Status: "ok"}, http.StatusOK)
}
