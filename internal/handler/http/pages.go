// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/MKhiriev/voice-dashboard/internal/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	pageIndex    = "index"
	pageCall     = "call"
	pageSettings = "settings"
	pageAgent    = "agent"
	pageContacts = "contacts"
	pageHistory  = "history"
)

var pageTitles = map[string]string{
	pageIndex:    "Dashboard",
	pageCall:     "Make a Call",
	pageSettings: "Settings",
	pageAgent:    "Agent",
	pageContacts: "Contacts",
	pageHistory:  "Call History",
}

// pageSet maps a page name to its template, each parsed together with the
// shared layout.
type pageSet map[string]*template.Template

type pageData struct {
	Name  string
	Title string
}

func parsePages() (pageSet, error) {
	pages := make(pageSet, len(pageTitles))
	for name := range pageTitles {
		tmpl, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, err
		}
		pages[name] = tmpl
	}
	return pages, nil
}

func (h *Handler) page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tmpl, ok := h.pages[name]
		if !ok {
			http.NotFound(w, r)
			return
		}

		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, "layout", pageData{Name: name, Title: pageTitles[name]}); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.page").Str("page", name).Msg("error rendering page")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	}
}
