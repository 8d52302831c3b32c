// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CiviBridge Authors

package config

import "github.com/civibridge/mattersync/models"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.CRM.BaseURL == "" || cfg.CRM.APIKey == "" {
		return ErrInvalidCRMConfigs
	}

	if cfg.Chat.BaseURL == "" || cfg.Chat.Token == "" || cfg.Chat.TeamName == "" {
		return ErrInvalidChatConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Sync.CredentialSecret == "" {
		return ErrInvalidSyncConfigs
	}

	if cfg.Sync.ChannelType != "" && !models.ChannelType(cfg.Sync.ChannelType).Valid() {
		return ErrInvalidSyncConfigs
	}

	return nil
}
