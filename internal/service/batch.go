// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CiviBridge Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/civibridge/mattersync/internal/logger"
	"github.com/civibridge/mattersync/internal/store"
	"github.com/civibridge/mattersync/models"
)

// defaultLeaseTTL bounds a tick that dies without releasing its lease.
const defaultLeaseTTL = 5 * time.Minute

// batchItem is one unit of batch work. Exactly one of gc or userID is
// meaningful, depending on which directory the current phase pages over.
type batchItem struct {
	link   models.ChannelLink
	gc     models.GroupContact
	userID string
}

// pageLoader materialises batch pages for one tick. Channel member lists
// are cached for the duration of the tick so the processed page and the
// look-ahead page come from the same snapshot.
type pageLoader struct {
	svc     *syncService
	links   []models.ChannelLink
	byGroup map[int64]models.ChannelLink
	members map[string][]models.ChannelMember
}

func (s *syncService) newPageLoader(ctx context.Context) (*pageLoader, error) {
	links, err := s.links.ChannelLinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing channel links: %w", err)
	}

	byGroup := make(map[int64]models.ChannelLink, len(links))
	for _, link := range links {
		byGroup[link.GroupID] = link
	}

	return &pageLoader{
		svc:     s,
		links:   links,
		byGroup: byGroup,
		members: make(map[string][]models.ChannelMember),
	}, nil
}

// load returns the window [offset, offset+limit) of the item sequence of the
// given phase. The CRM is paged for phases walking group membership; channel
// member lists are flattened in channel link order for the others.
func (l *pageLoader) load(ctx context.Context, direction models.Direction, phase models.BatchPhase, offset, limit int) ([]batchItem, error) {
	if l.pagesCRM(direction, phase) {
		return l.loadCRMPage(ctx, offset, limit)
	}
	return l.loadChatPage(ctx, offset, limit)
}

// pagesCRM reports whether the phase walks CRM group membership. The add
// phase walks the source directory of the direction, the remove phase walks
// the target.
func (l *pageLoader) pagesCRM(direction models.Direction, phase models.BatchPhase) bool {
	if direction == models.DirectionToChat {
		return phase == models.PhaseAdd
	}
	return phase == models.PhaseRemove
}

func (l *pageLoader) loadCRMPage(ctx context.Context, offset, limit int) ([]batchItem, error) {
	if len(l.links) == 0 {
		return nil, nil
	}

	groupIDs := make([]int64, 0, len(l.links))
	for _, link := range l.links {
		groupIDs = append(groupIDs, link.GroupID)
	}

	rows, err := l.svc.crm.ActiveGroupContactsPage(ctx, groupIDs, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error paging group contacts: %w", err)
	}

	items := make([]batchItem, 0, len(rows))
	for _, gc := range rows {
		items = append(items, batchItem{link: l.byGroup[gc.GroupID], gc: gc})
	}
	return items, nil
}

func (l *pageLoader) loadChatPage(ctx context.Context, offset, limit int) ([]batchItem, error) {
	var flat []batchItem
	for _, link := range l.links {
		members, err := l.channelMembers(ctx, link.ChannelID)
		if err != nil {
			return nil, err
		}
		for _, m := range members {
			flat = append(flat, batchItem{link: link, userID: m.UserID})
		}
		if len(flat) >= offset+limit {
			break
		}
	}

	if offset >= len(flat) {
		return nil, nil
	}
	end := offset + limit
	if end > len(flat) {
		end = len(flat)
	}
	return flat[offset:end], nil
}

func (l *pageLoader) channelMembers(ctx context.Context, channelID string) ([]models.ChannelMember, error) {
	if members, ok := l.members[channelID]; ok {
		return members, nil
	}

	members, err := l.svc.chat.ChannelMembers(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("error listing members of channel %s: %w", channelID, err)
	}
	l.members[channelID] = members
	return members, nil
}

func (s *syncService) Tick(ctx context.Context, direction models.Direction, cron bool) (models.TickResult, error) {
	if !direction.Valid() {
		return models.TickResult{}, fmt.Errorf("%w: %q", ErrUnknownDirection, direction)
	}

	ttl := s.cfg.LeaseTTL
	if ttl <= 0 {
		ttl = defaultLeaseTTL
	}
	acquired, err := s.leases.Acquire(ctx, direction, s.holder, ttl)
	if err != nil {
		return models.TickResult{}, fmt.Errorf("error acquiring tick lease: %w", err)
	}
	if !acquired {
		return models.TickResult{}, fmt.Errorf("%w: %s", ErrTickInProgress, direction)
	}
	defer func() {
		if err := s.leases.Release(context.WithoutCancel(ctx), direction, s.holder); err != nil {
			s.logger.Error().Err(err).Str("direction", string(direction)).Msg("error releasing tick lease")
		}
	}()

	cursor, err := s.cursors.Get(ctx, direction)
	switch {
	case errors.Is(err, store.ErrCursorNotFound):
		cursor = models.BatchCursor{
			Direction: direction,
			Phase:     models.PhaseAdd,
			PageSize:  s.cfg.EffectivePageSize(cron),
		}
	case err != nil:
		return models.TickResult{}, fmt.Errorf("error loading batch cursor: %w", err)
	}

	loader, err := s.newPageLoader(ctx)
	if err != nil {
		return models.TickResult{}, err
	}

	result := models.TickResult{
		Direction: direction,
		Phase:     cursor.Phase,
		From:      cursor.Offset,
	}

	items, err := loader.load(ctx, direction, cursor.Phase, cursor.Offset, cursor.PageSize)
	if err != nil {
		return result, fmt.Errorf("error loading batch page: %w", err)
	}

	log := logger.FromContext(ctx)
	for _, item := range items {
		action := s.processItem(ctx, direction, cursor.Phase, item)
		if action.Failed() {
			log.Error().
				Str("error", action.Err).
				Str("op", string(action.Op)).
				Int64("group_id", action.GroupID).
				Int64("contact_id", action.ContactID).
				Str("user_id", action.UserID).
				Msg("batch item failed")
		}
		result.Processed++
	}

	cursor.Offset += len(items)
	result.To = cursor.Offset

	// look ahead one page: an empty next window means this phase is done
	next, err := loader.load(ctx, direction, cursor.Phase, cursor.Offset, cursor.PageSize)
	if err != nil {
		if perr := s.cursors.Put(ctx, cursor); perr != nil {
			log.Error().Err(perr).Msg("error saving batch cursor")
		}
		return result, fmt.Errorf("error peeking next batch page: %w", err)
	}
	if len(next) == 0 {
		cursor.Phase++
		cursor.Offset = 0
	}

	if cursor.Phase >= models.PhaseDone {
		if err = s.cursors.Delete(ctx, direction); err != nil {
			return result, fmt.Errorf("error deleting batch cursor: %w", err)
		}
		result.Finished = true
		return result, nil
	}

	if err = s.cursors.Put(ctx, cursor); err != nil {
		return result, fmt.Errorf("error saving batch cursor: %w", err)
	}
	return result, nil
}

func (s *syncService) processItem(ctx context.Context, direction models.Direction, phase models.BatchPhase, item batchItem) models.SyncAction {
	switch {
	case direction == models.DirectionToChat && phase == models.PhaseAdd:
		return s.recon.AddMemberToChat(ctx, item.link, item.gc.ContactID)
	case direction == models.DirectionToChat:
		return s.recon.RemoveFromChatIfAbsent(ctx, item.link, item.userID)
	case phase == models.PhaseAdd:
		return s.recon.AddMemberToCRM(ctx, item.link, item.userID)
	default:
		return s.recon.RemoveFromCRMIfAbsent(ctx, item.link, item.gc)
	}
}

func (s *syncService) CancelBatch(ctx context.Context, direction models.Direction) error {
	if !direction.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownDirection, direction)
	}

	exists, err := s.cursors.Exists(ctx, direction)
	if err != nil {
		return fmt.Errorf("error checking for a batch run: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrNoRunInProgress, direction)
	}

	if err := s.cursors.Delete(ctx, direction); err != nil {
		return fmt.Errorf("error cancelling batch run: %w", err)
	}
	s.logger.Info().Str("direction", string(direction)).Msg("batch run cancelled")
	return nil
}

func (s *syncService) BatchStatus(ctx context.Context, direction models.Direction) (models.BatchCursor, error) {
	if !direction.Valid() {
		return models.BatchCursor{}, fmt.Errorf("%w: %q", ErrUnknownDirection, direction)
	}

	cursor, err := s.cursors.Get(ctx, direction)
	if errors.Is(err, store.ErrCursorNotFound) {
		return models.BatchCursor{}, fmt.Errorf("%w: %s", ErrNoRunInProgress, direction)
	}
	if err != nil {
		return models.BatchCursor{}, fmt.Errorf("error loading batch cursor: %w", err)
	}
	return cursor, nil
}
