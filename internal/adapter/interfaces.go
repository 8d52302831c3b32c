package adapter

import (
	"context"

	"github.com/civibridge/mattersync/models"
)

// CRMDirectory is the CiviCRM membership facade. All methods are thin RPC
// wrappers over the CiviCRM APIv4 REST endpoint; CiviCRM remains the
// authority for group membership.
type CRMDirectory interface {
	// Group fetches one group by id.
	Group(ctx context.Context, groupID int64) (models.Group, error)

	// CreateGroup creates a group with the given title and returns the
	// created record.
	CreateGroup(ctx context.Context, title string) (models.Group, error)

	// Contact fetches one contact, including its primary email when set.
	Contact(ctx context.Context, contactID int64) (models.Contact, error)

	// ActiveGroupContacts lists all membership rows with status Added for
	// one group.
	ActiveGroupContacts(ctx context.Context, groupID int64) ([]models.GroupContact, error)

	// ActiveGroupContactsPage lists membership rows with status Added across
	// the given groups, ordered by row id, windowed by limit and offset.
	ActiveGroupContactsPage(ctx context.Context, groupIDs []int64, limit, offset int) ([]models.GroupContact, error)

	// GroupContact fetches the membership row for a group and contact in any
	// status. Returns a wrapped [ErrNotFound] when no row exists.
	GroupContact(ctx context.Context, groupID, contactID int64) (models.GroupContact, error)

	// CreateGroupContact inserts a membership row with status Added.
	CreateGroupContact(ctx context.Context, groupID, contactID int64) (models.GroupContact, error)

	// SetGroupContactStatus flips the status of an existing membership row.
	SetGroupContactStatus(ctx context.Context, rowID int64, status models.MembershipStatus) error
}

// ChatDirectory is the Mattermost REST facade. Mattermost remains the
// authority for channel membership and user accounts.
type ChatDirectory interface {
	// Team resolves a team by name. Returns a wrapped [ErrNotFound] when the
	// team does not exist.
	Team(ctx context.Context, name string) (models.Team, error)

	// User fetches one user by id.
	User(ctx context.Context, userID string) (models.ChatUser, error)

	// UserByEmail looks a user up by email. Returns a wrapped [ErrNotFound]
	// when no account uses the address.
	UserByEmail(ctx context.Context, email string) (models.ChatUser, error)

	// UserByUsername looks a user up by username. Returns a wrapped
	// [ErrNotFound] when the name is free.
	UserByUsername(ctx context.Context, username string) (models.ChatUser, error)

	// CreateUser creates an account with the given profile and password.
	CreateUser(ctx context.Context, user models.ChatUser, password string) (models.ChatUser, error)

	// SetUserActive activates or deactivates an account.
	SetUserActive(ctx context.Context, userID string, active bool) error

	// SetUserPassword resets an account password.
	SetUserPassword(ctx context.Context, userID, password string) error

	// Channel fetches one channel by id.
	Channel(ctx context.Context, channelID string) (models.Channel, error)

	// CreateChannel creates a channel inside its TeamID.
	CreateChannel(ctx context.Context, channel models.Channel) (models.Channel, error)

	// ChannelMembers lists all members of a channel.
	ChannelMembers(ctx context.Context, channelID string) ([]models.ChannelMember, error)

	// ChannelMember fetches one membership row. Returns a wrapped
	// [ErrNotFound] when the user is not in the channel.
	ChannelMember(ctx context.Context, channelID, userID string) (models.ChannelMember, error)

	// AddChannelMember puts a user into a channel.
	AddChannelMember(ctx context.Context, channelID, userID string) error

	// RemoveChannelMember takes a user out of a channel.
	RemoveChannelMember(ctx context.Context, channelID, userID string) error

	// AddTeamMember puts a user into a team. Team membership is required
	// before channel membership.
	AddTeamMember(ctx context.Context, teamID, userID string) error

	// ChannelsForUser lists the channels of a team the user belongs to.
	ChannelsForUser(ctx context.Context, teamID, userID string) ([]models.Channel, error)
}
