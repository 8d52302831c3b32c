// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CiviBridge Authors

package models

// IdentityLink records that a CiviCRM contact and a Mattermost user are the
// same person. The mapping is held in a dedicated table with lookups in both
// directions; neither directory stores the other system's identifier.
type IdentityLink struct {
	ContactID int64  `json:"contact_id"`
	UserID    string `json:"user_id"`
}

// ChannelLink pairs a synced CiviCRM group with its Mattermost channel.
// ChannelName and ChannelURL are cached copies of Mattermost state so that
// admin surfaces can render links without a directory round trip.
type ChannelLink struct {
	GroupID     int64  `json:"group_id"`
	ChannelID   string `json:"channel_id"`
	ChannelName string `json:"channel_name,omitempty"`
	ChannelURL  string `json:"channel_url,omitempty"`
}
