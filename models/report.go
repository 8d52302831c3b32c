// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CiviBridge Authors

package models

// SyncOp labels a single reconciliation action.
type SyncOp string

const (
	OpAdd        SyncOp = "add"
	OpRemove     SyncOp = "remove"
	OpSkip       SyncOp = "skip"
	OpProvision  SyncOp = "provision"
	OpDeactivate SyncOp = "deactivate"
)

// SyncAction is one per-item outcome from a sync run. Err is the rendered
// error message for failed items; successful items leave it empty.
type SyncAction struct {
	Op        SyncOp `json:"op"`
	GroupID   int64  `json:"group_id,omitempty"`
	ChannelID string `json:"channel_id,omitempty"`
	ContactID int64  `json:"contact_id,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Err       string `json:"error,omitempty"`
}

// Failed reports whether the action ended in an error.
func (a SyncAction) Failed() bool {
	return a.Err != ""
}

// SyncReport aggregates the outcome of a sync run. Individual item failures
// are recorded here rather than aborting the run.
type SyncReport struct {
	Actions []SyncAction `json:"actions"`

	Added   int `json:"added"`
	Removed int `json:"removed"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// Record appends an action and updates the counters.
func (r *SyncReport) Record(a SyncAction) {
	r.Actions = append(r.Actions, a)

	if a.Failed() {
		r.Failed++
		return
	}

	switch a.Op {
	case OpAdd, OpProvision:
		r.Added++
	case OpRemove, OpDeactivate:
		r.Removed++
	case OpSkip:
		r.Skipped++
	}
}

// Merge folds another report into r.
func (r *SyncReport) Merge(other SyncReport) {
	r.Actions = append(r.Actions, other.Actions...)
	r.Added += other.Added
	r.Removed += other.Removed
	r.Skipped += other.Skipped
	r.Failed += other.Failed
}
