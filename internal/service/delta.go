// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CiviBridge Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/civibridge/mattersync/internal/adapter"
	"github.com/civibridge/mattersync/internal/logger"
	"github.com/civibridge/mattersync/internal/store"
	"github.com/civibridge/mattersync/models"
)

// reconciler implements [Reconciler]. Both directories stay authoritative
// for their own side; the reconciler only moves membership, never profile
// data.
type reconciler struct {
	crm   adapter.CRMDirectory
	chat  adapter.ChatDirectory
	links store.LinkStore
	prov  Provisioner

	teamName string
	teamMu   sync.Mutex
	teamID   string

	logger *logger.Logger
}

// NewReconciler constructs a [Reconciler] bound to the single configured
// chat team.
func NewReconciler(
	crm adapter.CRMDirectory,
	chat adapter.ChatDirectory,
	links store.LinkStore,
	prov Provisioner,
	teamName string,
	logger *logger.Logger,
) Reconciler {
	logger.Debug().Msg("creating reconciler")
	return &reconciler{
		crm:      crm,
		chat:     chat,
		links:    links,
		prov:     prov,
		teamName: teamName,
		logger:   logger,
	}
}

// team resolves the configured team once and caches its id for the lifetime
// of the process.
func (r *reconciler) team(ctx context.Context) (string, error) {
	r.teamMu.Lock()
	defer r.teamMu.Unlock()

	if r.teamID != "" {
		return r.teamID, nil
	}

	team, err := r.chat.Team(ctx, r.teamName)
	if err != nil {
		return "", fmt.Errorf("error resolving team %q: %w", r.teamName, err)
	}
	r.teamID = team.ID
	return r.teamID, nil
}

func (r *reconciler) SyncGroupToChannel(ctx context.Context, link models.ChannelLink) (models.SyncReport, error) {
	log := logger.FromContext(ctx)
	report := models.SyncReport{}

	desired, err := r.crm.ActiveGroupContacts(ctx, link.GroupID)
	if err != nil {
		return report, fmt.Errorf("error listing contacts of group %d: %w", link.GroupID, err)
	}
	current, err := r.chat.ChannelMembers(ctx, link.ChannelID)
	if err != nil {
		return report, fmt.Errorf("error listing members of channel %s: %w", link.ChannelID, err)
	}

	currentSet := make(map[string]bool, len(current))
	for _, m := range current {
		currentSet[m.UserID] = true
	}
	desiredContacts := make(map[int64]bool, len(desired))
	for _, gc := range desired {
		desiredContacts[gc.ContactID] = true
	}

	// additions first so a contact moved between groups is never without a
	// channel in between
	for _, gc := range desired {
		action := r.addToChat(ctx, link, gc.ContactID, currentSet)
		report.Record(action)
		r.logAction(log, action)
	}

	for _, m := range current {
		action := r.removeFromChat(ctx, link, m.UserID, desiredContacts, false)
		report.Record(action)
		r.logAction(log, action)
	}

	return report, nil
}

func (r *reconciler) SyncChannelToGroup(ctx context.Context, link models.ChannelLink) (models.SyncReport, error) {
	log := logger.FromContext(ctx)
	report := models.SyncReport{}

	desired, err := r.chat.ChannelMembers(ctx, link.ChannelID)
	if err != nil {
		return report, fmt.Errorf("error listing members of channel %s: %w", link.ChannelID, err)
	}
	current, err := r.crm.ActiveGroupContacts(ctx, link.GroupID)
	if err != nil {
		return report, fmt.Errorf("error listing contacts of group %d: %w", link.GroupID, err)
	}

	desiredUsers := make(map[string]bool, len(desired))
	for _, m := range desired {
		desiredUsers[m.UserID] = true
	}

	for _, m := range desired {
		action := r.AddMemberToCRM(ctx, link, m.UserID)
		report.Record(action)
		r.logAction(log, action)
	}

	for _, gc := range current {
		action := r.removeFromCRM(ctx, link, gc, desiredUsers, false)
		report.Record(action)
		r.logAction(log, action)
	}

	return report, nil
}

func (r *reconciler) AddMemberToChat(ctx context.Context, link models.ChannelLink, contactID int64) models.SyncAction {
	return r.addToChat(ctx, link, contactID, nil)
}

func (r *reconciler) RemoveFromChatIfAbsent(ctx context.Context, link models.ChannelLink, userID string) models.SyncAction {
	return r.removeFromChat(ctx, link, userID, nil, true)
}

func (r *reconciler) RemoveFromCRMIfAbsent(ctx context.Context, link models.ChannelLink, gc models.GroupContact) models.SyncAction {
	return r.removeFromCRM(ctx, link, gc, nil, true)
}

// addToChat provisions the account of contactID and ensures channel
// membership. currentSet, when non-nil, is a pre-fetched member set used
// instead of a per-item membership probe.
func (r *reconciler) addToChat(ctx context.Context, link models.ChannelLink, contactID int64, currentSet map[string]bool) models.SyncAction {
	action := models.SyncAction{
		Op:        models.OpAdd,
		GroupID:   link.GroupID,
		ChannelID: link.ChannelID,
		ContactID: contactID,
	}

	user, provisioned, err := r.prov.EnsureUser(ctx, contactID)
	if err != nil {
		action.Op = models.OpProvision
		action.Err = err.Error()
		return action
	}
	if provisioned {
		action.Op = models.OpProvision
	}
	action.UserID = user.ID
	action.Subject = user.Username

	var isMember bool
	if currentSet != nil {
		isMember = currentSet[user.ID]
	} else {
		_, err = r.chat.ChannelMember(ctx, link.ChannelID, user.ID)
		switch {
		case err == nil:
			isMember = true
		case errors.Is(err, adapter.ErrNotFound):
			isMember = false
		default:
			action.Err = fmt.Sprintf("error checking channel membership: %v", err)
			return action
		}
	}

	if isMember {
		action.Op = models.OpSkip
		return action
	}

	teamID, err := r.team(ctx)
	if err != nil {
		action.Err = err.Error()
		return action
	}
	if err = r.chat.AddTeamMember(ctx, teamID, user.ID); err != nil {
		action.Err = fmt.Sprintf("error adding user to team: %v", err)
		return action
	}
	if err = r.chat.AddChannelMember(ctx, link.ChannelID, user.ID); err != nil {
		action.Err = fmt.Sprintf("error adding user to channel: %v", err)
		return action
	}
	return action
}

// removeFromChat drops userID from the channel. desiredContacts, when
// non-nil, is the active contact set of this run and keeps members whose
// addition failed earlier in the same run. When check is set the group
// membership is re-verified per item, which makes the operation safe to
// replay from a stale batch page.
func (r *reconciler) removeFromChat(ctx context.Context, link models.ChannelLink, userID string, desiredContacts map[int64]bool, check bool) models.SyncAction {
	action := models.SyncAction{
		Op:        models.OpRemove,
		GroupID:   link.GroupID,
		ChannelID: link.ChannelID,
		UserID:    userID,
	}

	contactID, err := r.links.ContactIDForUser(ctx, userID)
	switch {
	case errors.Is(err, store.ErrLinkNotFound), errors.Is(err, store.ErrAmbiguousLink):
		// members this engine did not place are never touched
		action.Op = models.OpSkip
		return action
	case err != nil:
		action.Err = fmt.Sprintf("error resolving identity link: %v", err)
		return action
	}
	action.ContactID = contactID

	if desiredContacts != nil && desiredContacts[contactID] {
		action.Op = models.OpSkip
		return action
	}

	if check {
		gc, err := r.crm.GroupContact(ctx, link.GroupID, contactID)
		switch {
		case err == nil && gc.IsActive():
			action.Op = models.OpSkip
			return action
		case err != nil && !errors.Is(err, adapter.ErrNotFound):
			action.Err = fmt.Sprintf("error checking group membership: %v", err)
			return action
		}
	}

	if err = r.chat.RemoveChannelMember(ctx, link.ChannelID, userID); err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			action.Op = models.OpSkip
			return action
		}
		action.Err = fmt.Sprintf("error removing user from channel: %v", err)
		return action
	}
	return action
}

func (r *reconciler) AddMemberToCRM(ctx context.Context, link models.ChannelLink, userID string) models.SyncAction {
	action := models.SyncAction{
		Op:        models.OpAdd,
		GroupID:   link.GroupID,
		ChannelID: link.ChannelID,
		UserID:    userID,
	}

	contactID, err := r.links.ContactIDForUser(ctx, userID)
	switch {
	case errors.Is(err, store.ErrLinkNotFound), errors.Is(err, store.ErrAmbiguousLink):
		// no contact is ever created for an unlinked chat user
		action.Op = models.OpSkip
		return action
	case err != nil:
		action.Err = fmt.Sprintf("error resolving identity link: %v", err)
		return action
	}
	action.ContactID = contactID

	gc, err := r.crm.GroupContact(ctx, link.GroupID, contactID)
	switch {
	case errors.Is(err, adapter.ErrNotFound):
		if _, err = r.crm.CreateGroupContact(ctx, link.GroupID, contactID); err != nil {
			action.Err = fmt.Sprintf("error adding contact to group: %v", err)
		}
		return action
	case err != nil:
		action.Err = fmt.Sprintf("error checking group membership: %v", err)
		return action
	}

	if gc.IsActive() {
		action.Op = models.OpSkip
		return action
	}

	// a Removed row means the contact rejoined: flip the status instead of
	// inserting a duplicate row
	if err = r.crm.SetGroupContactStatus(ctx, gc.ID, models.StatusAdded); err != nil {
		action.Err = fmt.Sprintf("error restoring group membership: %v", err)
	}
	return action
}

// removeFromCRM flips a membership row to Removed. desiredUsers, when
// non-nil, is the channel member set of this run. When check is set the
// channel membership is re-verified per item.
func (r *reconciler) removeFromCRM(ctx context.Context, link models.ChannelLink, gc models.GroupContact, desiredUsers map[string]bool, check bool) models.SyncAction {
	action := models.SyncAction{
		Op:        models.OpRemove,
		GroupID:   link.GroupID,
		ChannelID: link.ChannelID,
		ContactID: gc.ContactID,
	}

	userID, err := r.links.UserIDForContact(ctx, gc.ContactID)
	switch {
	case errors.Is(err, store.ErrLinkNotFound):
		// contacts this engine never provisioned are left in the group
		action.Op = models.OpSkip
		return action
	case err != nil:
		action.Err = fmt.Sprintf("error resolving identity link: %v", err)
		return action
	}
	action.UserID = userID

	if desiredUsers != nil && desiredUsers[userID] {
		action.Op = models.OpSkip
		return action
	}

	if check {
		_, err = r.chat.ChannelMember(ctx, link.ChannelID, userID)
		switch {
		case err == nil:
			action.Op = models.OpSkip
			return action
		case !errors.Is(err, adapter.ErrNotFound):
			action.Err = fmt.Sprintf("error checking channel membership: %v", err)
			return action
		}
	}

	if err = r.crm.SetGroupContactStatus(ctx, gc.ID, models.StatusRemoved); err != nil {
		action.Err = fmt.Sprintf("error flipping group membership: %v", err)
	}
	return action
}

func (r *reconciler) logAction(log *logger.Logger, action models.SyncAction) {
	event := log.Info()
	if action.Failed() {
		event = log.Error().Str("error", action.Err)
	}
	event.
		Str("op", string(action.Op)).
		Int64("group_id", action.GroupID).
		Str("channel_id", action.ChannelID).
		Int64("contact_id", action.ContactID).
		Str("user_id", action.UserID).
		Msg("sync action")
}
