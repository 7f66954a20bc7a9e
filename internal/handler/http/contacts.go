// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/voice-dashboard/internal/app"
	"github.com/MKhiriev/voice-dashboard/internal/utils"
	"github.com/MKhiriev/voice-dashboard/models"
)

func (h *Handler) getContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.services.ContactService.List(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, r, "*Handler.getContacts", err)
		return
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}

	utils.WriteJSON(w, models.ContactsResponse{Success: true, Contacts: contacts}, http.StatusOK)
}

func (h *Handler) addContact(w http.ResponseWriter, r *http.Request) {
	var contact models.Contact
	if err := decodeBody(r, &contact); err != nil {
		writeError(w, r, "*Handler.addContact", err)
		return
	}

	id, err := h.services.ContactService.Create(r.Context(), contact)
	if err != nil {
		writeError(w, r, "*Handler.addContact", err)
		return
	}

	utils.WriteJSON(w, models.ContactCreatedResponse{Success: true, ContactID: id, Message: app.MsgContactAdded}, http.StatusOK)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.updateContact", err)
		return
	}

	var contact models.Contact
	if err = decodeBody(r, &contact); err != nil {
		writeError(w, r, "*Handler.updateContact", err)
		return
	}
	contact.ID = id

	if err = h.services.ContactService.Update(r.Context(), contact); err != nil {
		writeError(w, r, "*Handler.updateContact", err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Success: true, Message: app.MsgContactUpdated}, http.StatusOK)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteContact", err)
		return
	}

	if err = h.services.ContactService.Delete(r.Context(), id); err != nil {
		writeError(w, r, "*Handler.deleteContact", err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Success: true, Message: app.MsgContactDeleted}, http.StatusOK)
}
