package service

import "errors"

var (
	// ErrMissingEmail is returned when a contact cannot be provisioned
	// because it has no primary email address.
	ErrMissingEmail = errors.New("contact has no email address")

	// ErrTickInProgress is returned when another tick holds the advisory
	// lease for the direction.
	ErrTickInProgress = errors.New("a tick for this direction is already running")

	// ErrNoRunInProgress is returned when no batch cursor exists for the
	// direction.
	ErrNoRunInProgress = errors.New("no batch run in progress")

	// ErrUnknownDirection is returned for a direction outside the two
	// supported values.
	ErrUnknownDirection = errors.New("unknown sync direction")

	// ErrGroupNotLinked is returned when an operation references a group
	// outside the synced set.
	ErrGroupNotLinked = errors.New("group is not linked to a channel")
)
