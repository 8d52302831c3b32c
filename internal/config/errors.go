package config

import "errors"

// Sentinel errors returned by config validation. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrInvalidCRMConfigs is returned when the CiviCRM base URL or API key
	// is missing.
	ErrInvalidCRMConfigs = errors.New("invalid crm configs")

	// ErrInvalidChatConfigs is returned when the Mattermost base URL, token,
	// or team name is missing.
	ErrInvalidChatConfigs = errors.New("invalid chat configs")

	// ErrInvalidStorageConfigs is returned when no database DSN is configured.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs")

	// ErrInvalidSyncConfigs is returned when the credential secret is missing
	// or the configured channel type is not "O" or "P".
	ErrInvalidSyncConfigs = errors.New("invalid sync configs")
)
