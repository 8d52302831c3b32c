// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CiviBridge Authors

package http

import (
	"net/http"
	"strconv"

	"github.com/civibridge/mattersync/internal/logger"
	"github.com/civibridge/mattersync/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) linkGroupToNewChannel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	groupID, ok := pathID(w, r, "groupID")
	if !ok {
		return
	}

	link, err := h.services.Sync.LinkGroupToNewChannel(ctx, groupID)
	if err != nil {
		log.Error().Err(err).Str("func", "*Handler.linkGroupToNewChannel").Msg("error linking group")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, link, http.StatusCreated)
}

func (h *Handler) linkChannelToNewGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	channelID := chi.URLParam(r, "channelID")

	link, err := h.services.Sync.LinkChannelToNewGroup(ctx, channelID)
	if err != nil {
		log.Error().Err(err).Str("func", "*Handler.linkChannelToNewGroup").Msg("error linking channel")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, link, http.StatusCreated)
}

func (h *Handler) unlinkGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	groupID, ok := pathID(w, r, "groupID")
	if !ok {
		return
	}

	if err := h.services.Sync.UnlinkGroup(ctx, groupID); err != nil {
		log.Error().Err(err).Str("func", "*Handler.unlinkGroup").Msg("error unlinking group")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addContactToChannel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	groupID, ok := pathID(w, r, "groupID")
	if !ok {
		return
	}
	contactID, ok := pathID(w, r, "contactID")
	if !ok {
		return
	}

	if err := h.services.Sync.AddContactToChannel(ctx, groupID, contactID); err != nil {
		log.Error().Err(err).Str("func", "*Handler.addContactToChannel").Msg("error adding contact")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) removeContactFromChannel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	groupID, ok := pathID(w, r, "groupID")
	if !ok {
		return
	}
	contactID, ok := pathID(w, r, "contactID")
	if !ok {
		return
	}

	if err := h.services.Sync.RemoveContactFromChannel(ctx, groupID, contactID); err != nil {
		log.Error().Err(err).Str("func", "*Handler.removeContactFromChannel").Msg("error removing contact")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses a numeric URL parameter, writing a 400 on garbage input.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		http.Error(w, "invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
