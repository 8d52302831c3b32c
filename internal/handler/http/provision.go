// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CiviBridge Authors

package http

import (
	"net/http"

	"github.com/civibridge/mattersync/internal/logger"
)

// deactivateChatAccount soft-deletes the chat account linked to a contact,
// the counterpart of a contact being deleted in the CRM.
func (h *Handler) deactivateChatAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	contactID, ok := pathID(w, r, "contactID")
	if !ok {
		return
	}

	if err := h.services.Provisioner.DeactivateUser(ctx, contactID); err != nil {
		log.Error().Err(err).Str("func", "*Handler.deactivateChatAccount").Msg("error deactivating chat account")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
