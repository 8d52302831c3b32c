// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CiviBridge Authors

package models

// BatchPhase is the position of a batched sync run in its three-phase
// lifecycle. A run first sweeps additions, then sweeps removals, then is
// done. Phases only move forward; cancelling a run deletes its cursor
// instead of rewinding it.
type BatchPhase int

const (
	PhaseAdd BatchPhase = iota
	PhaseRemove
	PhaseDone
)

// String returns a log-friendly phase label.
func (p BatchPhase) String() string {
	switch p {
	case PhaseAdd:
		return "add"
	case PhaseRemove:
		return "remove"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// DefaultPageSize is the number of membership items processed per tick when
// no explicit page size is configured.
const DefaultPageSize = 25

// Direction identifies which way a sync run pushes membership. Each
// direction owns an independent batch cursor, so runs in both directions
// can be in flight at once.
type Direction string

const (
	DirectionToChat Direction = "crm-to-chat"
	DirectionToCRM  Direction = "chat-to-crm"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == DirectionToChat || d == DirectionToCRM
}

// BatchCursor is the persisted resume point of a batched sync run, keyed by
// direction. Offset counts items within the current phase's flattened
// membership list.
type BatchCursor struct {
	Direction Direction  `json:"direction"`
	Phase     BatchPhase `json:"phase"`
	Offset    int        `json:"offset"`
	PageSize  int        `json:"page_size"`
}

// TickResult describes what one batch tick did, mirrored back to callers of
// the admin surface so progress can be displayed between ticks.
type TickResult struct {
	Direction Direction  `json:"direction"`
	Phase     BatchPhase `json:"phase"`
	From      int        `json:"from"`
	To        int        `json:"to"`
	Processed int        `json:"processed"`
	Finished  bool       `json:"finished"`
}
