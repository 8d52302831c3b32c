// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CiviBridge Authors

package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/civibridge/mattersync/internal/adapter"
	"github.com/civibridge/mattersync/internal/config"
	"github.com/civibridge/mattersync/internal/crypto"
	"github.com/civibridge/mattersync/internal/logger"
	"github.com/civibridge/mattersync/internal/service"
	"github.com/civibridge/mattersync/internal/store"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mattersync",
		Short:         "Membership sync between CiviCRM groups and Mattermost channels",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newSyncToChatCmd(),
		newSyncToCRMCmd(),
		newCredentialCmd(),
		newMigrateCmd(),
	)

	return root
}

// app bundles everything a subcommand needs after configuration is loaded.
type app struct {
	cfg      *config.StructuredConfig
	log      *logger.Logger
	storages *store.Storages
	services *service.Services
}

func newApp(ctx context.Context) (*app, error) {
	// a missing .env file is fine, env vars and flags still apply
	_ = godotenv.Load()

	log := logger.NewLogger("mattersync")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	crm := adapter.NewCRMDirectory(adapter.CRMClientConfig{
		BaseURL: cfg.CRM.BaseURL,
		APIKey:  cfg.CRM.APIKey,
		Timeout: cfg.CRM.RequestTimeout,
	})
	chat := adapter.NewChatDirectory(adapter.ChatClientConfig{
		BaseURL: cfg.Chat.BaseURL,
		Token:   cfg.Chat.Token,
		Timeout: cfg.Chat.RequestTimeout,
	})
	sealer := crypto.NewCredentialSealer(cfg.Sync.CredentialSecret)

	return &app{
		cfg:      cfg,
		log:      log,
		storages: storages,
		services: service.NewServices(crm, chat, storages, sealer, cfg, log),
	}, nil
}

func (a *app) close() {
	if err := a.storages.Close(); err != nil {
		a.log.Error().Err(err).Msg("error closing storages")
	}
}
