package service

import (
	"github.com/civibridge/mattersync/internal/adapter"
	"github.com/civibridge/mattersync/internal/config"
	"github.com/civibridge/mattersync/internal/crypto"
	"github.com/civibridge/mattersync/internal/logger"
	"github.com/civibridge/mattersync/internal/store"
)

// Services bundles everything the CLI and the admin server work through.
type Services struct {
	Sync        SyncService
	Provisioner Provisioner
	Job         SyncJob
}

// NewServices wires the provisioner, the reconciler, the orchestrator, and
// the scheduled job from their dependencies.
func NewServices(
	crm adapter.CRMDirectory,
	chat adapter.ChatDirectory,
	storages *store.Storages,
	sealer crypto.CredentialSealer,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) *Services {
	prov := NewProvisioner(crm, chat, storages, sealer, cfg.Sync, logger)
	recon := NewReconciler(crm, chat, storages.Links, prov, cfg.Chat.TeamName, logger)
	sync := NewSyncService(crm, chat, storages, recon, prov, cfg.Sync, cfg.Chat, logger)

	return &Services{
		Sync:        sync,
		Provisioner: prov,
		Job:         NewSyncJob(sync, logger),
	}
}
