// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CiviBridge Authors

package models

// ChatUser is a Mattermost user account. DeleteAt follows the Mattermost
// convention: zero for active accounts, a millisecond timestamp for
// deactivated ones. Mattermost never hard-deletes users through the API.
type ChatUser struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Nickname    string `json:"nickname,omitempty"`
	AuthService string `json:"auth_service,omitempty"`
	DeleteAt    int64  `json:"delete_at"`
}

// IsDeactivated reports whether the account has been soft-deleted.
func (u ChatUser) IsDeactivated() bool {
	return u.DeleteAt > 0
}

// ChannelType is the Mattermost channel visibility marker.
type ChannelType string

const (
	ChannelTypeOpen    ChannelType = "O"
	ChannelTypePrivate ChannelType = "P"
)

// Valid reports whether the type is one a linked channel may use.
func (t ChannelType) Valid() bool {
	return t == ChannelTypeOpen || t == ChannelTypePrivate
}

// Channel is a Mattermost channel.
type Channel struct {
	ID          string      `json:"id"`
	TeamID      string      `json:"team_id"`
	Name        string      `json:"name"`
	DisplayName string      `json:"display_name"`
	Type        ChannelType `json:"type"`
	DeleteAt    int64       `json:"delete_at"`
}

// ChannelMember is one channel membership row.
type ChannelMember struct {
	ChannelID string `json:"channel_id"`
	UserID    string `json:"user_id"`
}

// Team is a Mattermost team. Every linked channel belongs to the single
// team configured for the deployment.
type Team struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}
