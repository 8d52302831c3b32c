// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CiviBridge Authors

package http

import (
	"net/http"

	"github.com/civibridge/mattersync/internal/logger"
	"github.com/civibridge/mattersync/internal/utils"
	"github.com/civibridge/mattersync/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) fullSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	direction := models.Direction(chi.URLParam(r, "direction"))

	report, err := h.services.Sync.FullSync(ctx, direction)
	if err != nil {
		log.Error().Err(err).Str("func", "*Handler.fullSync").Msg("full sync failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) tick(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	direction := models.Direction(chi.URLParam(r, "direction"))

	result, err := h.services.Sync.Tick(ctx, direction, false)
	if err != nil {
		log.Error().Err(err).Str("func", "*Handler.tick").Msg("tick failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) batchStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	direction := models.Direction(chi.URLParam(r, "direction"))

	cursor, err := h.services.Sync.BatchStatus(ctx, direction)
	if err != nil {
		log.Error().Err(err).Str("func", "*Handler.batchStatus").Msg("error getting batch status")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, cursor, http.StatusOK)
}

func (h *Handler) cancelBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	direction := models.Direction(chi.URLParam(r, "direction"))

	if err := h.services.Sync.CancelBatch(ctx, direction); err != nil {
		log.Error().Err(err).Str("func", "*Handler.cancelBatch").Msg("error cancelling batch run")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
