package store

import (
	"context"
	"time"

	"github.com/civibridge/mattersync/models"
)

// LinkStore persists the identity and channel mappings between the two
// directories. Neither directory stores the other's identifiers; this store
// is the only place the correspondence lives.
type LinkStore interface {
	// UserIDForContact returns the chat user id linked to a contact.
	// Returns a wrapped [ErrLinkNotFound] when the contact is unlinked.
	UserIDForContact(ctx context.Context, contactID int64) (string, error)

	// ContactIDForUser returns the contact id linked to a chat user.
	// Returns [ErrLinkNotFound] when the user is unlinked and
	// [ErrAmbiguousLink] when more than one contact claims the user; an
	// ambiguous link is a data error and must be treated as absent.
	ContactIDForUser(ctx context.Context, userID string) (int64, error)

	// SetUserLink records contactID ↔ userID. An empty userID clears the
	// link instead.
	SetUserLink(ctx context.Context, contactID int64, userID string) error

	// ChannelForGroup returns the channel link of a synced group.
	// Returns a wrapped [ErrLinkNotFound] when the group is not synced.
	ChannelForGroup(ctx context.Context, groupID int64) (models.ChannelLink, error)

	// GroupForChannel returns the group id linked to a channel.
	// Returns a wrapped [ErrLinkNotFound] when the channel is not synced.
	GroupForChannel(ctx context.Context, channelID string) (int64, error)

	// SetChannelLink upserts a group ↔ channel pair.
	SetChannelLink(ctx context.Context, link models.ChannelLink) error

	// ClearChannelLink removes a group from the synced set.
	ClearChannelLink(ctx context.Context, groupID int64) error

	// ChannelLinks lists all synced pairs ordered by group id. The group
	// ids of this list are the synced group set.
	ChannelLinks(ctx context.Context) ([]models.ChannelLink, error)
}

// CredentialStore persists sealed provisioning credentials per chat user.
type CredentialStore interface {
	// SaveCredential upserts the sealed credential of a user.
	SaveCredential(ctx context.Context, userID, sealed string) error

	// Credential returns the sealed credential of a user. Returns a wrapped
	// [ErrCredentialNotFound] when none is stored.
	Credential(ctx context.Context, userID string) (string, error)
}

// CursorStore persists batch resume points, one per sync direction.
type CursorStore interface {
	// Get returns the cursor of a direction. Returns a wrapped
	// [ErrCursorNotFound] when no run is in progress.
	Get(ctx context.Context, direction models.Direction) (models.BatchCursor, error)

	// Put upserts a cursor.
	Put(ctx context.Context, cursor models.BatchCursor) error

	// Delete removes a cursor. Deleting an absent cursor is not an error.
	Delete(ctx context.Context, direction models.Direction) error

	// Exists reports whether a run is in progress for the direction.
	Exists(ctx context.Context, direction models.Direction) (bool, error)
}

// LeaseStore hands out short-lived advisory leases so concurrent ticks of
// the same direction do not interleave.
type LeaseStore interface {
	// Acquire attempts to take the lease for a direction. It succeeds when
	// the lease is free, expired, or already held by the same holder.
	Acquire(ctx context.Context, direction models.Direction, holder string, ttl time.Duration) (bool, error)

	// Release drops the lease if still held by holder.
	Release(ctx context.Context, direction models.Direction, holder string) error
}
