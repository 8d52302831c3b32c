package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLinkNotFound is returned when a contact, user, group, or channel
	// has no stored mapping.
	ErrLinkNotFound = errors.New("link not found")

	// ErrAmbiguousLink is returned when a reverse lookup matches more than
	// one row. This is a data error: callers must treat the identity as
	// unlinked rather than trust either row.
	ErrAmbiguousLink = errors.New("ambiguous link")

	// ErrCredentialNotFound is returned when no sealed credential is stored
	// for a user.
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrCursorNotFound is returned when no batch run is in progress for the
	// requested direction.
	ErrCursorNotFound = errors.New("batch cursor not found")

	// ErrChannelAlreadyLinked is returned when a channel is already paired
	// with a different group.
	ErrChannelAlreadyLinked = errors.New("channel already linked to another group")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
