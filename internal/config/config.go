// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CiviBridge Authors

package config

import (
	"time"

	"github.com/civibridge/mattersync/models"
)

// StructuredConfig is the top-level configuration container for mattersync.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// CRM holds connection settings for the CiviCRM APIv4 endpoint.
	CRM CRM `envPrefix:"CRM_"`

	// Chat holds connection settings for the Mattermost REST API.
	Chat Chat `envPrefix:"CHAT_"`

	// Storage holds configuration for the mapping database that stores
	// identity links, channel links, and batch cursors.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds behavioural settings for reconciliation runs.
	Sync Sync `envPrefix:"SYNC_"`

	// Server holds the admin HTTP server settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// CRM holds CiviCRM APIv4 settings.
type CRM struct {
	// BaseURL is the CiviCRM site root (e.g. "https://crm.example.org").
	// Env: CRM_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is the CiviCRM API key sent as a bearer credential on every
	// request. Must be kept confidential.
	// Env: CRM_API_KEY
	APIKey string `env:"API_KEY"`

	// RequestTimeout bounds a single CiviCRM API call (e.g. "15s").
	// Env: CRM_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Chat holds Mattermost REST API settings.
type Chat struct {
	// BaseURL is the Mattermost server root (e.g. "https://chat.example.org").
	// Env: CHAT_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Token is the personal access token of the Mattermost service account.
	// Must be kept confidential.
	// Env: CHAT_TOKEN
	Token string `env:"TOKEN"`

	// TeamName is the name of the single Mattermost team all linked channels
	// belong to.
	// Env: CHAT_TEAM_NAME
	TeamName string `env:"TEAM_NAME"`

	// RequestTimeout bounds a single Mattermost API call (e.g. "15s").
	// Env: CHAT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the mapping database.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the mapping database. Both SQLite and
// PostgreSQL are supported; the driver is chosen from the DSN scheme.
type DB struct {
	// DSN is the database connection string. A "postgres://" prefix selects
	// the pgx driver; anything else is treated as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Sync holds behavioural settings for reconciliation runs.
type Sync struct {
	// PageSize is the number of membership items processed per batch tick
	// started from the admin surface. Zero selects the default of 25.
	// Env: SYNC_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// CronPageSize overrides PageSize for ticks fired by the scheduled job.
	// Zero falls back to PageSize.
	// Env: SYNC_CRON_PAGE_SIZE
	CronPageSize int `env:"CRON_PAGE_SIZE"`

	// Interval is how often the scheduled job fires a batch tick in each
	// direction (e.g. "10m"). Zero disables the scheduled job.
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// AdoptByEmail controls whether provisioning may claim an existing
	// Mattermost account whose email matches the contact. Deployments with
	// unverified emails should disable this.
	// Env: SYNC_ADOPT_BY_EMAIL
	AdoptByEmail bool `env:"ADOPT_BY_EMAIL" envDefault:"true"`

	// ClearLinkOnDelete controls whether deactivating a chat user also wipes
	// the stored identity link. Clearing is the default; disabling it keeps
	// the link so the account can be reactivated for the same contact later.
	// Env: SYNC_CLEAR_LINK_ON_DELETE
	ClearLinkOnDelete bool `env:"CLEAR_LINK_ON_DELETE" envDefault:"true"`

	// CredentialSecret is the deployment secret used to derive the key that
	// encrypts provisioned passwords at rest. Must be kept confidential.
	// Env: SYNC_CREDENTIAL_SECRET
	CredentialSecret string `env:"CREDENTIAL_SECRET"`

	// ChannelType is the type used when creating a channel for a newly
	// linked group: "O" (open) or "P" (private).
	// Env: SYNC_CHANNEL_TYPE
	ChannelType string `env:"CHANNEL_TYPE" envDefault:"P"`

	// LeaseTTL is how long a batch tick holds the per-direction advisory
	// lease before it is considered abandoned.
	// Env: SYNC_LEASE_TTL
	LeaseTTL time.Duration `env:"LEASE_TTL"`
}

// Server holds the admin HTTP server settings.
type Server struct {
	// HTTPAddress is the TCP address on which the admin HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// EffectivePageSize resolves the page size for a tick. cron selects the
// scheduled-run override when one is configured.
func (s Sync) EffectivePageSize(cron bool) int {
	if cron && s.CronPageSize > 0 {
		return s.CronPageSize
	}
	if s.PageSize > 0 {
		return s.PageSize
	}
	return models.DefaultPageSize
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
