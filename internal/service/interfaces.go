// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CiviBridge Authors

package service

import (
	"context"
	"time"

	"github.com/civibridge/mattersync/models"
)

// Provisioner resolves a CRM contact to a usable chat account, creating or
// restoring the account when needed. CiviCRM owns the profile data; the chat
// server owns the account.
type Provisioner interface {
	// EnsureUser returns the active chat account of a contact. A deactivated
	// account is reactivated with a fresh credential; a missing one is created
	// (or adopted by email when enabled) and linked. provisioned reports
	// whether a credential was issued during the call. Returns a wrapped
	// [ErrMissingEmail] when the contact has no primary email.
	EnsureUser(ctx context.Context, contactID int64) (user models.ChatUser, provisioned bool, err error)

	// DeactivateUser soft-deletes the chat account linked to a contact.
	// The identity link is kept only when configured to do so.
	DeactivateUser(ctx context.Context, contactID int64) error

	// RevealCredential returns the plaintext of the stored provisioning
	// credential of a contact, for an operator handing the password to a new
	// user. Returns a wrapped [store.ErrCredentialNotFound] when none is
	// stored.
	RevealCredential(ctx context.Context, contactID int64) (string, error)
}

// Reconciler applies membership deltas between one linked group and channel.
// Snapshot methods reconcile a whole pair; the single-item methods are the
// checked-before-applied building blocks the batch engine pages over.
type Reconciler interface {
	// SyncGroupToChannel makes the channel roster match the group roster.
	// Additions happen before removals. Per-item failures are recorded in the
	// report and do not stop the run; a snapshot failure aborts the pair.
	SyncGroupToChannel(ctx context.Context, link models.ChannelLink) (models.SyncReport, error)

	// SyncChannelToGroup makes the group roster match the channel roster.
	// Channel members without an identity link are left untouched.
	SyncChannelToGroup(ctx context.Context, link models.ChannelLink) (models.SyncReport, error)

	// AddMemberToChat ensures the chat account of contactID exists and is a
	// member of the linked channel.
	AddMemberToChat(ctx context.Context, link models.ChannelLink, contactID int64) models.SyncAction

	// RemoveFromChatIfAbsent drops userID from the linked channel unless the
	// corresponding contact is still active in the group.
	RemoveFromChatIfAbsent(ctx context.Context, link models.ChannelLink, userID string) models.SyncAction

	// AddMemberToCRM ensures the contact of userID holds an Added membership
	// row in the linked group. Unlinked users are skipped, never created.
	AddMemberToCRM(ctx context.Context, link models.ChannelLink, userID string) models.SyncAction

	// RemoveFromCRMIfAbsent flips a membership row to Removed unless the
	// linked chat user is still a member of the channel.
	RemoveFromCRMIfAbsent(ctx context.Context, link models.ChannelLink, gc models.GroupContact) models.SyncAction
}

// SyncService is the orchestration surface exposed to the CLI, the admin
// HTTP server, and the scheduled job.
type SyncService interface {
	// FullSync reconciles every linked pair in the given direction and
	// returns the merged report. Pair-level failures are logged and counted;
	// they do not stop the remaining pairs.
	FullSync(ctx context.Context, direction models.Direction) (models.SyncReport, error)

	// Tick processes one page of the resumable batch run for a direction,
	// creating the run on first call. cron selects the scheduled-run page
	// size. Returns a wrapped [ErrTickInProgress] when another tick holds
	// the direction lease.
	Tick(ctx context.Context, direction models.Direction, cron bool) (models.TickResult, error)

	// CancelBatch discards the batch cursor of a direction so the next tick
	// starts a fresh run. Returns a wrapped [ErrNoRunInProgress] when no run
	// exists.
	CancelBatch(ctx context.Context, direction models.Direction) error

	// BatchStatus returns the cursor of an in-progress run. Returns a
	// wrapped [ErrNoRunInProgress] when none exists.
	BatchStatus(ctx context.Context, direction models.Direction) (models.BatchCursor, error)

	// AddContactToChannel provisions and adds one contact to the channel
	// linked to groupID.
	AddContactToChannel(ctx context.Context, groupID, contactID int64) error

	// RemoveContactFromChannel removes one contact's chat account from the
	// channel linked to groupID.
	RemoveContactFromChannel(ctx context.Context, groupID, contactID int64) error

	// LinkGroupToNewChannel creates a channel for a CRM group and records the
	// pair in the synced set.
	LinkGroupToNewChannel(ctx context.Context, groupID int64) (models.ChannelLink, error)

	// LinkChannelToNewGroup creates a CRM group for an existing channel and
	// records the pair in the synced set.
	LinkChannelToNewGroup(ctx context.Context, channelID string) (models.ChannelLink, error)

	// UnlinkGroup removes a pair from the synced set without touching either
	// roster.
	UnlinkGroup(ctx context.Context, groupID int64) error
}

// SyncJob drives batch ticks in both directions on a fixed interval.
type SyncJob interface {
	// Start launches the background ticker. Calling Start on a running job
	// is a no-op.
	Start(ctx context.Context, interval time.Duration)

	// Stop halts the ticker and waits for an in-flight tick to finish.
	Stop()
}
