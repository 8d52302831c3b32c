// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CiviBridge Authors

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/civibridge/mattersync/internal/adapter"
	"github.com/civibridge/mattersync/internal/config"
	"github.com/civibridge/mattersync/internal/crypto"
	"github.com/civibridge/mattersync/internal/logger"
	"github.com/civibridge/mattersync/internal/store"
	"github.com/civibridge/mattersync/models"
)

// provisioner implements [Provisioner] on top of the two directories, the
// identity link store, and the credential sealer.
type provisioner struct {
	crm    adapter.CRMDirectory
	chat   adapter.ChatDirectory
	links  store.LinkStore
	creds  store.CredentialStore
	sealer crypto.CredentialSealer

	adoptByEmail      bool
	clearLinkOnDelete bool

	logger *logger.Logger
}

// NewProvisioner constructs a [Provisioner].
func NewProvisioner(
	crm adapter.CRMDirectory,
	chat adapter.ChatDirectory,
	storages *store.Storages,
	sealer crypto.CredentialSealer,
	cfg config.Sync,
	logger *logger.Logger,
) Provisioner {
	logger.Debug().Msg("creating provisioner")
	return &provisioner{
		crm:               crm,
		chat:              chat,
		links:             storages.Links,
		creds:             storages.Credentials,
		sealer:            sealer,
		adoptByEmail:      cfg.AdoptByEmail,
		clearLinkOnDelete: cfg.ClearLinkOnDelete,
		logger:            logger,
	}
}

func (p *provisioner) EnsureUser(ctx context.Context, contactID int64) (models.ChatUser, bool, error) {
	log := logger.FromContext(ctx)

	userID, err := p.links.UserIDForContact(ctx, contactID)
	switch {
	case err == nil:
		return p.ensureLinked(ctx, userID)
	case errors.Is(err, store.ErrLinkNotFound):
		// fall through to adoption or creation
	default:
		return models.ChatUser{}, false, fmt.Errorf("error resolving identity link for contact %d: %w", contactID, err)
	}

	contact, err := p.crm.Contact(ctx, contactID)
	if err != nil {
		return models.ChatUser{}, false, fmt.Errorf("error fetching contact %d: %w", contactID, err)
	}
	if contact.Email == "" {
		return models.ChatUser{}, false, fmt.Errorf("%w: contact %d", ErrMissingEmail, contactID)
	}

	if p.adoptByEmail {
		user, err := p.chat.UserByEmail(ctx, contact.Email)
		if err == nil {
			log.Info().
				Int64("contact_id", contactID).
				Str("user_id", user.ID).
				Msg("adopting existing chat account by email")
			return p.adopt(ctx, contactID, user)
		}
		if !errors.Is(err, adapter.ErrNotFound) {
			return models.ChatUser{}, false, fmt.Errorf("error looking up chat account by email: %w", err)
		}
	}

	user, err := p.create(ctx, contact)
	return user, err == nil, err
}

func (p *provisioner) DeactivateUser(ctx context.Context, contactID int64) error {
	userID, err := p.links.UserIDForContact(ctx, contactID)
	if err != nil {
		return fmt.Errorf("error resolving identity link for contact %d: %w", contactID, err)
	}

	if err = p.chat.SetUserActive(ctx, userID, false); err != nil {
		return fmt.Errorf("error deactivating chat user %s: %w", userID, err)
	}

	logger.FromContext(ctx).Info().
		Int64("contact_id", contactID).
		Str("user_id", userID).
		Msg("deactivated chat account")

	if p.clearLinkOnDelete {
		if err = p.links.SetUserLink(ctx, contactID, ""); err != nil {
			return fmt.Errorf("error clearing identity link for contact %d: %w", contactID, err)
		}
	}
	return nil
}

func (p *provisioner) RevealCredential(ctx context.Context, contactID int64) (string, error) {
	userID, err := p.links.UserIDForContact(ctx, contactID)
	if err != nil {
		return "", fmt.Errorf("error resolving identity link for contact %d: %w", contactID, err)
	}

	sealed, err := p.creds.Credential(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("error loading credential of chat user %s: %w", userID, err)
	}

	password, err := p.sealer.Open(sealed)
	if err != nil {
		return "", fmt.Errorf("error opening credential of chat user %s: %w", userID, err)
	}
	return password, nil
}

// ensureLinked fetches an already linked account and restores it when it was
// soft-deleted since the last sync.
func (p *provisioner) ensureLinked(ctx context.Context, userID string) (models.ChatUser, bool, error) {
	user, err := p.chat.User(ctx, userID)
	if err != nil {
		return models.ChatUser{}, false, fmt.Errorf("error fetching chat user %s: %w", userID, err)
	}

	if user.IsDeactivated() {
		if err = p.restore(ctx, user.ID); err != nil {
			return models.ChatUser{}, false, err
		}
		user.DeleteAt = 0
		return user, true, nil
	}
	return user, false, nil
}

// adopt claims an existing account for the contact. An active account keeps
// its credential; a deactivated one is restored with a fresh credential.
func (p *provisioner) adopt(ctx context.Context, contactID int64, user models.ChatUser) (models.ChatUser, bool, error) {
	if err := p.links.SetUserLink(ctx, contactID, user.ID); err != nil {
		return models.ChatUser{}, false, fmt.Errorf("error linking contact %d to chat user %s: %w", contactID, user.ID, err)
	}

	if user.IsDeactivated() {
		if err := p.restore(ctx, user.ID); err != nil {
			return models.ChatUser{}, false, err
		}
		user.DeleteAt = 0
		return user, true, nil
	}
	return user, false, nil
}

// create provisions a brand new chat account for the contact.
func (p *provisioner) create(ctx context.Context, contact models.Contact) (models.ChatUser, error) {
	username, err := uniqueUsername(ctx, p.chat, usernameBase(contact))
	if err != nil {
		return models.ChatUser{}, err
	}

	password, err := p.sealer.GeneratePassword()
	if err != nil {
		return models.ChatUser{}, fmt.Errorf("error generating password: %w", err)
	}

	user, err := p.chat.CreateUser(ctx, models.ChatUser{
		Username:  username,
		Email:     contact.Email,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
	}, password)
	if err != nil {
		return models.ChatUser{}, fmt.Errorf("error creating chat user %q: %w", username, err)
	}

	logger.FromContext(ctx).Info().
		Int64("contact_id", contact.ID).
		Str("user_id", user.ID).
		Str("username", username).
		Msg("provisioned chat account")

	if err = p.links.SetUserLink(ctx, contact.ID, user.ID); err != nil {
		return models.ChatUser{}, fmt.Errorf("error linking contact %d to chat user %s: %w", contact.ID, user.ID, err)
	}

	if err = p.saveSealed(ctx, user.ID, password); err != nil {
		return models.ChatUser{}, err
	}
	return user, nil
}

// restore reactivates a soft-deleted account and rotates its credential.
func (p *provisioner) restore(ctx context.Context, userID string) error {
	if err := p.chat.SetUserActive(ctx, userID, true); err != nil {
		return fmt.Errorf("error reactivating chat user %s: %w", userID, err)
	}

	password, err := p.sealer.GeneratePassword()
	if err != nil {
		return fmt.Errorf("error generating password: %w", err)
	}
	if err = p.chat.SetUserPassword(ctx, userID, password); err != nil {
		return fmt.Errorf("error rotating password of chat user %s: %w", userID, err)
	}

	logger.FromContext(ctx).Info().
		Str("user_id", userID).
		Msg("reactivated chat account")

	return p.saveSealed(ctx, userID, password)
}

func (p *provisioner) saveSealed(ctx context.Context, userID, password string) error {
	sealed, err := p.sealer.Seal(password)
	if err != nil {
		return fmt.Errorf("error sealing credential of chat user %s: %w", userID, err)
	}
	if err = p.creds.SaveCredential(ctx, userID, sealed); err != nil {
		return fmt.Errorf("error storing credential of chat user %s: %w", userID, err)
	}
	return nil
}
