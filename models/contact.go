// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CiviBridge Authors

package models

// Contact is a CiviCRM person record reduced to the fields the sync engine
// needs. Email may be empty: CiviCRM does not require a primary email, and
// provisioning treats a missing email as a per-contact failure rather than
// a fatal condition.
type Contact struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email,omitempty"`
}

// Group is a CiviCRM group. Name is the machine name, Title the
// human-readable label shown in the CiviCRM UI.
type Group struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

// MembershipStatus is the lifecycle state of a group-contact relationship.
// CiviCRM never deletes membership rows during normal operation; leaving a
// group flips the row to StatusRemoved so that the join history survives.
type MembershipStatus string

const (
	StatusAdded   MembershipStatus = "Added"
	StatusRemoved MembershipStatus = "Removed"
	StatusPending MembershipStatus = "Pending"
)

// GroupContact is one group-contact membership row.
type GroupContact struct {
	ID        int64            `json:"id"`
	GroupID   int64            `json:"group_id"`
	ContactID int64            `json:"contact_id"`
	Status    MembershipStatus `json:"status"`
}

// IsActive reports whether the row represents current membership.
func (gc GroupContact) IsActive() bool {
	return gc.Status == StatusAdded
}
