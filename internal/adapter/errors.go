package adapter

import "errors"

var (
	// ErrNotFound is returned when a directory reports a queried record as
	// cleanly absent. For Mattermost this requires a 404 carrying one of the
	// recognised application error ids; an unexplained 404 is a transport
	// failure, not absence.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized is returned when the directory rejects the configured
	// credential.
	ErrUnauthorized = errors.New("directory rejected credentials")

	// ErrForbidden is returned when the credential is valid but lacks the
	// permission for the attempted operation.
	ErrForbidden = errors.New("operation forbidden")

	// ErrConflict is returned when a create collides with an existing record
	// (e.g. username or channel name already taken).
	ErrConflict = errors.New("record already exists")
)
