// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/shell-preferences/internal/app"
	"github.com/MKhiriev/shell-preferences/internal/logger"
	"github.com/MKhiriev/shell-preferences/internal/utils"
	"github.com/go-chi/chi/v5"
)

// getPreferences serves the resolved preferences. The fingerprint is sent as
// a strong ETag; a request carrying it in If-None-Match gets 304 without a
// body.
func (h *Handler) getPreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	etag := `"` + h.services.PreferencesService.Fingerprint(ctx) + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")

	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	resolved, err := h.services.PreferencesService.Resolved(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getPreferences").Msg("error getting resolved preferences")
		http.Error(w, app.MsgPreferencesUnavailable, statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, resolved, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getPreferences").Msg("error writing response")
	}
}

func (h *Handler) getDefaults(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	defaults, err := h.services.PreferencesService.Defaults(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getDefaults").Msg(app.MsgDefaultsUnavailable)
		http.Error(w, app.MsgDefaultsUnavailable, statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, defaults, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getDefaults").Msg("error writing response")
	}
}

func (h *Handler) getOverrides(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	overrides, err := h.services.PreferencesService.Overrides(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getOverrides").Msg(app.MsgOverridesUnavailable)
		http.Error(w, app.MsgOverridesUnavailable, statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, overrides, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getOverrides").Msg("error writing response")
	}
}

func (h *Handler) getSection(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := chi.URLParam(r, "section")

	section, err := h.services.PreferencesService.Section(r.Context(), name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getSection").Str("section", name).Msg(app.MsgSectionUnavailable)
		http.Error(w, app.MsgSectionUnavailable, statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, section, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getSection").Msg("error writing response")
	}
}

// etagMatches implements the weak comparison of If-None-Match.
func etagMatches(ifNoneMatch, etag string) bool {
	if ifNoneMatch == "" {
		return false
	}

	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}

	return false
}
