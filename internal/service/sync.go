// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CiviBridge Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/civibridge/mattersync/internal/adapter"
	"github.com/civibridge/mattersync/internal/config"
	"github.com/civibridge/mattersync/internal/logger"
	"github.com/civibridge/mattersync/internal/store"
	"github.com/civibridge/mattersync/models"
)

// syncService implements [SyncService].
type syncService struct {
	crm   adapter.CRMDirectory
	chat  adapter.ChatDirectory
	links store.LinkStore

	cursors store.CursorStore
	leases  store.LeaseStore

	recon Reconciler
	prov  Provisioner

	cfg         config.Sync
	chatBaseURL string
	teamName    string

	// holder identifies this process instance on advisory leases
	holder string

	logger *logger.Logger
}

// NewSyncService constructs the orchestration service.
func NewSyncService(
	crm adapter.CRMDirectory,
	chat adapter.ChatDirectory,
	storages *store.Storages,
	recon Reconciler,
	prov Provisioner,
	cfg config.Sync,
	chatCfg config.Chat,
	logger *logger.Logger,
) SyncService {
	logger.Debug().Msg("creating sync service")
	return &syncService{
		crm:         crm,
		chat:        chat,
		links:       storages.Links,
		cursors:     storages.Cursors,
		leases:      storages.Leases,
		recon:       recon,
		prov:        prov,
		cfg:         cfg,
		chatBaseURL: strings.TrimRight(chatCfg.BaseURL, "/"),
		teamName:    chatCfg.TeamName,
		holder:      uuid.NewString(),
		logger:      logger,
	}
}

func (s *syncService) FullSync(ctx context.Context, direction models.Direction) (models.SyncReport, error) {
	if !direction.Valid() {
		return models.SyncReport{}, fmt.Errorf("%w: %q", ErrUnknownDirection, direction)
	}

	log := logger.FromContext(ctx)
	report := models.SyncReport{}

	links, err := s.links.ChannelLinks(ctx)
	if err != nil {
		return report, fmt.Errorf("error listing channel links: %w", err)
	}

	for _, link := range links {
		var pair models.SyncReport
		if direction == models.DirectionToChat {
			pair, err = s.recon.SyncGroupToChannel(ctx, link)
		} else {
			pair, err = s.recon.SyncChannelToGroup(ctx, link)
		}
		report.Merge(pair)

		// a pair-level failure is counted and the run moves on
		if err != nil {
			log.Error().Err(err).
				Int64("group_id", link.GroupID).
				Str("channel_id", link.ChannelID).
				Msg("pair sync failed")
			report.Record(models.SyncAction{
				Op:        models.OpSkip,
				GroupID:   link.GroupID,
				ChannelID: link.ChannelID,
				Err:       err.Error(),
			})
		}
	}

	log.Info().
		Str("direction", string(direction)).
		Int("added", report.Added).
		Int("removed", report.Removed).
		Int("skipped", report.Skipped).
		Int("failed", report.Failed).
		Msg("full sync finished")

	return report, nil
}

func (s *syncService) AddContactToChannel(ctx context.Context, groupID, contactID int64) error {
	link, err := s.channelLink(ctx, groupID)
	if err != nil {
		return err
	}

	action := s.recon.AddMemberToChat(ctx, link, contactID)
	if action.Failed() {
		return fmt.Errorf("error adding contact %d to channel %s: %s", contactID, link.ChannelID, action.Err)
	}
	return nil
}

func (s *syncService) RemoveContactFromChannel(ctx context.Context, groupID, contactID int64) error {
	link, err := s.channelLink(ctx, groupID)
	if err != nil {
		return err
	}

	userID, err := s.links.UserIDForContact(ctx, contactID)
	if errors.Is(err, store.ErrLinkNotFound) {
		// never provisioned, nothing to remove
		return nil
	}
	if err != nil {
		return fmt.Errorf("error resolving identity link for contact %d: %w", contactID, err)
	}

	action := s.recon.RemoveFromChatIfAbsent(ctx, link, userID)
	if action.Failed() {
		return fmt.Errorf("error removing contact %d from channel %s: %s", contactID, link.ChannelID, action.Err)
	}
	return nil
}

func (s *syncService) LinkGroupToNewChannel(ctx context.Context, groupID int64) (models.ChannelLink, error) {
	group, err := s.crm.Group(ctx, groupID)
	if err != nil {
		return models.ChannelLink{}, fmt.Errorf("error fetching group %d: %w", groupID, err)
	}

	team, err := s.chat.Team(ctx, s.teamName)
	if err != nil {
		return models.ChannelLink{}, fmt.Errorf("error resolving team %q: %w", s.teamName, err)
	}

	name := slugify(group.Title)
	if name == "" {
		name = slugify(group.Name)
	}
	if name == "" {
		name = fmt.Sprintf("group-%d", groupID)
	}

	channel, err := s.chat.CreateChannel(ctx, models.Channel{
		TeamID:      team.ID,
		Name:        name,
		DisplayName: group.Title,
		Type:        models.ChannelType(s.cfg.ChannelType),
	})
	if err != nil {
		return models.ChannelLink{}, fmt.Errorf("error creating channel %q: %w", name, err)
	}

	link := models.ChannelLink{
		GroupID:     groupID,
		ChannelID:   channel.ID,
		ChannelName: channel.Name,
		ChannelURL:  s.channelURL(team.Name, channel.Name),
	}
	if err = s.links.SetChannelLink(ctx, link); err != nil {
		return models.ChannelLink{}, fmt.Errorf("error saving channel link: %w", err)
	}

	s.logger.Info().
		Int64("group_id", groupID).
		Str("channel_id", channel.ID).
		Str("channel_url", link.ChannelURL).
		Msg("linked group to new channel")

	return link, nil
}

func (s *syncService) LinkChannelToNewGroup(ctx context.Context, channelID string) (models.ChannelLink, error) {
	channel, err := s.chat.Channel(ctx, channelID)
	if err != nil {
		return models.ChannelLink{}, fmt.Errorf("error fetching channel %s: %w", channelID, err)
	}

	team, err := s.chat.Team(ctx, s.teamName)
	if err != nil {
		return models.ChannelLink{}, fmt.Errorf("error resolving team %q: %w", s.teamName, err)
	}

	title := channel.DisplayName
	if title == "" {
		title = channel.Name
	}

	group, err := s.crm.CreateGroup(ctx, title)
	if err != nil {
		return models.ChannelLink{}, fmt.Errorf("error creating group %q: %w", title, err)
	}

	link := models.ChannelLink{
		GroupID:     group.ID,
		ChannelID:   channel.ID,
		ChannelName: channel.Name,
		ChannelURL:  s.channelURL(team.Name, channel.Name),
	}
	if err = s.links.SetChannelLink(ctx, link); err != nil {
		return models.ChannelLink{}, fmt.Errorf("error saving channel link: %w", err)
	}

	s.logger.Info().
		Int64("group_id", group.ID).
		Str("channel_id", channel.ID).
		Msg("linked channel to new group")

	return link, nil
}

func (s *syncService) UnlinkGroup(ctx context.Context, groupID int64) error {
	if err := s.links.ClearChannelLink(ctx, groupID); err != nil {
		return fmt.Errorf("error clearing channel link of group %d: %w", groupID, err)
	}
	return nil
}

func (s *syncService) channelLink(ctx context.Context, groupID int64) (models.ChannelLink, error) {
	link, err := s.links.ChannelForGroup(ctx, groupID)
	if errors.Is(err, store.ErrLinkNotFound) {
		return models.ChannelLink{}, fmt.Errorf("%w: %d", ErrGroupNotLinked, groupID)
	}
	if err != nil {
		return models.ChannelLink{}, fmt.Errorf("error resolving channel link of group %d: %w", groupID, err)
	}
	return link, nil
}

func (s *syncService) channelURL(teamName, channelName string) string {
	return fmt.Sprintf("%s/%s/channels/%s", s.chatBaseURL, teamName, channelName)
}
