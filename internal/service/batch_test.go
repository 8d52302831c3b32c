// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CiviBridge Authors

package service

import (
	"context"
	"testing"
	"time"

	"github.com/civibridge/mattersync/internal/config"
	"github.com/civibridge/mattersync/internal/logger"
	"github.com/civibridge/mattersync/internal/mock"
	"github.com/civibridge/mattersync/internal/store"
	"github.com/civibridge/mattersync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// memCursorStore is an in-memory CursorStore so multi-tick tests can watch
// the cursor move without scripting every repository call.
type memCursorStore struct {
	cursors map[models.Direction]models.BatchCursor
}

func newMemCursorStore() *memCursorStore {
	return &memCursorStore{cursors: make(map[models.Direction]models.BatchCursor)}
}

func (s *memCursorStore) Get(_ context.Context, direction models.Direction) (models.BatchCursor, error) {
	cursor, ok := s.cursors[direction]
	if !ok {
		return models.BatchCursor{}, store.ErrCursorNotFound
	}
	return cursor, nil
}

func (s *memCursorStore) Put(_ context.Context, cursor models.BatchCursor) error {
	s.cursors[cursor.Direction] = cursor
	return nil
}

func (s *memCursorStore) Delete(_ context.Context, direction models.Direction) error {
	delete(s.cursors, direction)
	return nil
}

func (s *memCursorStore) Exists(_ context.Context, direction models.Direction) (bool, error) {
	_, ok := s.cursors[direction]
	return ok, nil
}

// memLeaseStore grants every acquire unless told otherwise.
type memLeaseStore struct {
	denied bool
}

func (s *memLeaseStore) Acquire(context.Context, models.Direction, string, time.Duration) (bool, error) {
	return !s.denied, nil
}

func (s *memLeaseStore) Release(context.Context, models.Direction, string) error {
	return nil
}

type batchFixture struct {
	svc     SyncService
	crm     *mock.MockCRMDirectory
	chat    *mock.MockChatDirectory
	links   *mock.MockLinkStore
	recon   *mock.MockReconciler
	cursors *memCursorStore
	leases  *memLeaseStore
}

func newBatchFixture(t *testing.T, cfg config.Sync) *batchFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &batchFixture{
		crm:     mock.NewMockCRMDirectory(ctrl),
		chat:    mock.NewMockChatDirectory(ctrl),
		links:   mock.NewMockLinkStore(ctrl),
		recon:   mock.NewMockReconciler(ctrl),
		cursors: newMemCursorStore(),
		leases:  &memLeaseStore{},
	}

	storages := &store.Storages{
		Links:   f.links,
		Cursors: f.cursors,
		Leases:  f.leases,
	}
	f.svc = NewSyncService(
		f.crm, f.chat, storages, f.recon, mock.NewMockProvisioner(ctrl),
		cfg, config.Chat{BaseURL: "https://chat.example.org", TeamName: "main"},
		logger.Nop(),
	)
	return f
}

// Five group contacts at page size two take three ticks for the add phase;
// the fourth tick is the first one of the remove phase.
func TestTick_PhaseAdvancesWithLookAhead(t *testing.T) {
	f := newBatchFixture(t, config.Sync{PageSize: 2})
	ctx := context.Background()

	link := models.ChannelLink{GroupID: 1, ChannelID: "ch1"}
	f.links.EXPECT().ChannelLinks(gomock.Any()).Return([]models.ChannelLink{link}, nil).AnyTimes()

	dataset := make([]models.GroupContact, 5)
	for i := range dataset {
		dataset[i] = models.GroupContact{ID: int64(i + 1), GroupID: 1, ContactID: int64(i + 1), Status: models.StatusAdded}
	}
	f.crm.EXPECT().ActiveGroupContactsPage(gomock.Any(), []int64{1}, 2, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []int64, limit, offset int) ([]models.GroupContact, error) {
			if offset >= len(dataset) {
				return nil, nil
			}
			end := offset + limit
			if end > len(dataset) {
				end = len(dataset)
			}
			return dataset[offset:end], nil
		}).AnyTimes()

	f.recon.EXPECT().AddMemberToChat(gomock.Any(), link, gomock.Any()).
		Return(models.SyncAction{Op: models.OpAdd}).Times(5)
	f.chat.EXPECT().ChannelMembers(gomock.Any(), "ch1").Return(nil, nil).AnyTimes()

	r1, err := f.svc.Tick(ctx, models.DirectionToChat, false)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseAdd, r1.Phase)
	assert.Equal(t, 0, r1.From)
	assert.Equal(t, 2, r1.To)
	assert.Equal(t, 2, r1.Processed)
	assert.False(t, r1.Finished)

	r2, err := f.svc.Tick(ctx, models.DirectionToChat, false)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseAdd, r2.Phase)
	assert.Equal(t, 2, r2.From)
	assert.Equal(t, 4, r2.To)

	r3, err := f.svc.Tick(ctx, models.DirectionToChat, false)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseAdd, r3.Phase)
	assert.Equal(t, 1, r3.Processed)
	assert.False(t, r3.Finished)

	// the look-ahead after tick three saw an empty page and rolled the
	// cursor into the remove phase
	cursor := f.cursors.cursors[models.DirectionToChat]
	assert.Equal(t, models.PhaseRemove, cursor.Phase)
	assert.Equal(t, 0, cursor.Offset)

	r4, err := f.svc.Tick(ctx, models.DirectionToChat, false)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseRemove, r4.Phase)
	assert.Equal(t, 0, r4.Processed)
	assert.True(t, r4.Finished)

	_, ok := f.cursors.cursors[models.DirectionToChat]
	assert.False(t, ok, "finished run must drop its cursor")
}

func TestTick_ChatToCRMPhasesPageOppositeDirectories(t *testing.T) {
	f := newBatchFixture(t, config.Sync{PageSize: 25})
	ctx := context.Background()

	link := models.ChannelLink{GroupID: 1, ChannelID: "ch1"}
	f.links.EXPECT().ChannelLinks(gomock.Any()).Return([]models.ChannelLink{link}, nil).AnyTimes()

	f.chat.EXPECT().ChannelMembers(gomock.Any(), "ch1").
		Return([]models.ChannelMember{{ChannelID: "ch1", UserID: "u1"}}, nil).AnyTimes()
	f.recon.EXPECT().AddMemberToCRM(gomock.Any(), link, "u1").
		Return(models.SyncAction{Op: models.OpAdd})

	r1, err := f.svc.Tick(ctx, models.DirectionToCRM, false)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseAdd, r1.Phase)
	assert.Equal(t, 1, r1.Processed)
	assert.False(t, r1.Finished)

	gc := models.GroupContact{ID: 11, GroupID: 1, ContactID: 4, Status: models.StatusAdded}
	f.crm.EXPECT().ActiveGroupContactsPage(gomock.Any(), []int64{1}, 25, 0).
		Return([]models.GroupContact{gc}, nil)
	f.crm.EXPECT().ActiveGroupContactsPage(gomock.Any(), []int64{1}, 25, 1).
		Return(nil, nil)
	f.recon.EXPECT().RemoveFromCRMIfAbsent(gomock.Any(), link, gc).
		Return(models.SyncAction{Op: models.OpRemove})

	r2, err := f.svc.Tick(ctx, models.DirectionToCRM, false)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseRemove, r2.Phase)
	assert.Equal(t, 1, r2.Processed)
	assert.True(t, r2.Finished)
}

func TestTick_LeaseHeldByAnotherRun(t *testing.T) {
	f := newBatchFixture(t, config.Sync{})
	f.leases.denied = true

	_, err := f.svc.Tick(context.Background(), models.DirectionToChat, false)
	require.ErrorIs(t, err, ErrTickInProgress)
}

func TestTick_UnknownDirection(t *testing.T) {
	f := newBatchFixture(t, config.Sync{})

	_, err := f.svc.Tick(context.Background(), models.Direction("sideways"), false)
	require.ErrorIs(t, err, ErrUnknownDirection)
}

func TestTick_CronPageSizeOverride(t *testing.T) {
	f := newBatchFixture(t, config.Sync{PageSize: 25, CronPageSize: 5})
	ctx := context.Background()

	link := models.ChannelLink{GroupID: 1, ChannelID: "ch1"}
	f.links.EXPECT().ChannelLinks(gomock.Any()).Return([]models.ChannelLink{link}, nil).AnyTimes()
	f.crm.EXPECT().ActiveGroupContactsPage(gomock.Any(), []int64{1}, 5, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []int64, limit, offset int) ([]models.GroupContact, error) {
			rows := make([]models.GroupContact, limit)
			for i := range rows {
				rows[i] = models.GroupContact{ID: int64(offset + i + 1), GroupID: 1, ContactID: int64(offset + i + 1)}
			}
			return rows, nil
		}).Times(2)
	f.recon.EXPECT().AddMemberToChat(gomock.Any(), link, gomock.Any()).
		Return(models.SyncAction{Op: models.OpAdd}).Times(5)

	result, err := f.svc.Tick(ctx, models.DirectionToChat, true)
	require.NoError(t, err)
	assert.Equal(t, 5, result.Processed)
	assert.Equal(t, 5, f.cursors.cursors[models.DirectionToChat].PageSize)
}

func TestCancelBatch(t *testing.T) {
	f := newBatchFixture(t, config.Sync{})
	ctx := context.Background()

	f.cursors.cursors[models.DirectionToChat] = models.BatchCursor{
		Direction: models.DirectionToChat,
		Phase:     models.PhaseRemove,
		Offset:    50,
		PageSize:  25,
	}

	require.NoError(t, f.svc.CancelBatch(ctx, models.DirectionToChat))

	_, err := f.svc.BatchStatus(ctx, models.DirectionToChat)
	require.ErrorIs(t, err, ErrNoRunInProgress)
}

func TestCancelBatch_NoRun(t *testing.T) {
	f := newBatchFixture(t, config.Sync{})

	err := f.svc.CancelBatch(context.Background(), models.DirectionToChat)
	require.ErrorIs(t, err, ErrNoRunInProgress)
}

func TestBatchStatus(t *testing.T) {
	f := newBatchFixture(t, config.Sync{})

	f.cursors.cursors[models.DirectionToCRM] = models.BatchCursor{
		Direction: models.DirectionToCRM,
		Phase:     models.PhaseAdd,
		Offset:    25,
		PageSize:  25,
	}

	cursor, err := f.svc.BatchStatus(context.Background(), models.DirectionToCRM)
	require.NoError(t, err)
	assert.Equal(t, 25, cursor.Offset)
	assert.Equal(t, models.PhaseAdd, cursor.Phase)
}
