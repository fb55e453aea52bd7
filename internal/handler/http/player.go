// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lumenplay/levelkeeper/internal/logger"
	"github.com/lumenplay/levelkeeper/internal/service"
	"github.com/lumenplay/levelkeeper/internal/utils"
	"github.com/lumenplay/levelkeeper/models"
)

// playerState serves the authenticated user's progress and subscription
// snapshot in one response.
func (h *Handler) playerState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in authenticated request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	state, err := h.services.PlayerService.State(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("player state load failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, state, http.StatusOK)
}

// applyMutation folds one replayed client mutation into the stored state.
// Re-applying an already accepted mutation is harmless, so a retry after a
// lost acknowledgement gets the same 200 the first attempt would have.
func (h *Handler) applyMutation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in authenticated request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var payload models.MutationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.PlayerService.ApplyMutation(ctx, userID, payload); err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			log.Warn().Err(err).Str("kind", payload.Kind).Msg("rejected invalid mutation")
			http.Error(w, "invalid mutation payload", http.StatusBadRequest)
			return
		}
		log.Err(err).Int64("user_id", userID).Msg("mutation apply failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
