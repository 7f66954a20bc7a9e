// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/voice-dashboard/internal/utils"
	"github.com/MKhiriev/voice-dashboard/models"
)

func (h *Handler) getTranscript(w http.ResponseWriter, r *http.Request) {
	callID, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.getTranscript", err)
		return
	}

	transcript, err := h.services.TranscriptService.List(r.Context(), callID)
	if err != nil {
		writeError(w, r, "*Handler.getTranscript", err)
		return
	}

	utils.WriteJSON(w, models.TranscriptResponse{Success: true, Transcript: transcript, CallID: callID}, http.StatusOK)
}

func (h *Handler) addTranscript(w http.ResponseWriter, r *http.Request) {
	callID, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.addTranscript", err)
		return
	}

	var message models.TranscriptMessage
	if err = decodeBody(r, &message); err != nil {
		writeError(w, r, "*Handler.addTranscript", err)
		return
	}
	message.ID = 0
	message.CallID = callID

	id, err := h.services.TranscriptService.Add(r.Context(), message)
	if err != nil {
		writeError(w, r, "*Handler.addTranscript", err)
		return
	}

	utils.WriteJSON(w, models.TranscriptCreatedResponse{Success: true, TranscriptID: id}, http.StatusOK)
}
