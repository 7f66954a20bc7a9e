// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/voice-dashboard/internal/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(metrics.InstrumentHandler)

	// probes stay reachable without credentials
	router.Get("/healthz", h.healthz)
	router.Handle("/metrics", metrics.Handler())

	router.Group(func(r chi.Router) {
		r.Use(h.withBasicAuth)
		r.Use(withGZip)

		r.Get("/", h.page(pageIndex))
		r.Get("/call", h.page(pageCall))
		r.Get("/settings", h.page(pageSettings))
		r.Get("/agent", h.page(pageAgent))
		r.Get("/contacts", h.page(pageContacts))
		r.Get("/history", h.page(pageHistory))

		r.Route("/api", func(r chi.Router) {
			r.With(h.dispatchLimiter.Handler).Post("/call", h.dispatchCall)

			r.Get("/settings", h.getSettings)
			r.Post("/settings", h.saveSettings)
			r.Get("/status", h.getStatus)

			r.Get("/agent", h.getAgentConfig)
			r.Post("/agent", h.saveAgentConfig)
			r.Get("/agent/templates", h.getAgentTemplates)

			r.Get("/calls", h.getCalls)
			r.Put("/calls/{id}", h.updateCall)

			r.Get("/transcripts/{id}", h.getTranscript)
			r.Post("/transcripts/{id}", h.addTranscript)

			r.Get("/costs", h.getCosts)
			r.Get("/analytics", h.getAnalytics)

			r.Get("/contacts", h.getContacts)
			r.Post("/contacts", h.addContact)
			r.Put("/contacts/{id}", h.updateContact)
			r.Delete("/contacts/{id}", h.deleteContact)

			r.Get("/version", h.getServerVersion)
		})
	})

	return router
}
