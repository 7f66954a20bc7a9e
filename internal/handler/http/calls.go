// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/voice-dashboard/internal/app"
	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/internal/metrics"
	"github.com/MKhiriev/voice-dashboard/internal/service"
	"github.com/MKhiriev/voice-dashboard/internal/utils"
	"github.com/MKhiriev/voice-dashboard/models"
)

func (h *Handler) dispatchCall(w http.ResponseWriter, r *http.Request) {
	var req models.CallRequest
	if err := decodeBody(r, &req); err != nil {
		metrics.RecordDispatch(metrics.DispatchInvalidRequest)
		writeError(w, r, "*Handler.dispatchCall", err)
		return
	}

	result, err := h.services.CallService.Dispatch(r.Context(), req.PhoneNumber)
	if err != nil {
		writeError(w, r, "*Handler.dispatchCall", err)
		return
	}

	utils.WriteJSON(w, models.CallDispatchResponse{Success: true, DispatchResult: result}, http.StatusOK)
}

func (h *Handler) getCalls(w http.ResponseWriter, r *http.Request) {
	limit := service.DefaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	calls, err := h.services.CallService.History(r.Context(), limit)
	if err != nil {
		writeError(w, r, "*Handler.getCalls", err)
		return
	}
	if calls == nil {
		calls = []models.Call{}
	}

	utils.WriteJSON(w, models.CallsResponse{Success: true, Calls: calls}, http.StatusOK)
}

func (h *Handler) updateCall(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.updateCall", err)
		return
	}

	var update models.CallUpdate
	if err = decodeBody(r, &update); err != nil {
		writeError(w, r, "*Handler.updateCall", err)
		return
	}

	if err = h.services.CallService.Update(r.Context(), id, update); err != nil {
		writeError(w, r, "*Handler.updateCall", err)
		return
	}

	logger.FromRequest(r).Debug().Int64("call_id", id).Msg("call updated")
	utils.WriteJSON(w, models.MessageResponse{Success: true, Message: app.MsgCallUpdated}, http.StatusOK)
}
