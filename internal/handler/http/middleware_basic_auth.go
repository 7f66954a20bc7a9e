// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"crypto/subtle"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/internal/utils"
	"github.com/MKhiriev/voice-dashboard/models"
)

const basicAuthRealm = `Basic realm="voice-dashboard", charset="UTF-8"`

// withBasicAuth protects the dashboard with HTTP basic authentication when
// an admin password hash is configured. Without a hash it is a no-op.
func (h *Handler) withBasicAuth(next http.Handler) http.Handler {
	if h.adminPasswordHash == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, password, ok := r.BasicAuth()
		if !ok || !h.checkCredentials(user, password) {
			logger.FromRequest(r).Warn().
				Str("func", "*Handler.withBasicAuth").
				Str("user", user).
				Bool("credentials_sent", ok).
				Msg("rejected dashboard credentials")

			w.Header().Set("WWW-Authenticate", basicAuthRealm)
			utils.WriteJSON(w, models.ErrorResponse{Error: ErrUnauthorized.Error()}, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) checkCredentials(user, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(h.adminUser)) == 1
	// the hash is compared even for a wrong user to keep timing uniform
	passwordOK := bcrypt.CompareHashAndPassword([]byte(h.adminPasswordHash), []byte(password)) == nil
	return userOK && passwordOK
}
