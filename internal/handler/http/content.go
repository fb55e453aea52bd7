// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lumenplay/levelkeeper/internal/logger"
	"github.com/lumenplay/levelkeeper/internal/service"
	"github.com/lumenplay/levelkeeper/internal/store"
	"github.com/lumenplay/levelkeeper/internal/utils"
	"github.com/lumenplay/levelkeeper/models"
)

// manifest serves the current published manifest. Responses are marked
// non-cacheable so the client's cache-busted fetch always sees the newest
// published state.
func (h *Handler) manifest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	m, err := h.services.ContentService.Manifest(r.Context())
	if err != nil {
		log.Err(err).Msg("manifest load failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, m, http.StatusOK)
}

func (h *Handler) entityMetas(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	metas, err := h.services.ContentService.EntityMetas(r.Context())
	if err != nil {
		log.Err(err).Msg("entity metas load failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, metas, http.StatusOK)
}

func (h *Handler) entityContent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id := models.EntityID(chi.URLParam(r, "entityID"))

	content, err := h.services.ContentService.EntityContent(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			http.Error(w, "invalid entity id", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEntityNotFound):
			log.Warn().Str("entity_id", string(id)).Msg("unknown entity requested")
			http.Error(w, "entity not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("entity_id", string(id)).Msg("entity content load failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, content, http.StatusOK)
}
