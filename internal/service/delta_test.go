// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CiviBridge Authors

package service

import (
	"context"
	"testing"

	"github.com/civibridge/mattersync/internal/adapter"
	"github.com/civibridge/mattersync/internal/logger"
	"github.com/civibridge/mattersync/internal/mock"
	"github.com/civibridge/mattersync/internal/store"
	"github.com/civibridge/mattersync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reconcilerMocks struct {
	crm   *mock.MockCRMDirectory
	chat  *mock.MockChatDirectory
	links *mock.MockLinkStore
	prov  *mock.MockProvisioner
}

func newTestReconciler(t *testing.T) (Reconciler, reconcilerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := reconcilerMocks{
		crm:   mock.NewMockCRMDirectory(ctrl),
		chat:  mock.NewMockChatDirectory(ctrl),
		links: mock.NewMockLinkStore(ctrl),
		prov:  mock.NewMockProvisioner(ctrl),
	}

	return NewReconciler(m.crm, m.chat, m.links, m.prov, "main", logger.Nop()), m
}

var testLink = models.ChannelLink{GroupID: 1, ChannelID: "ch1", ChannelName: "volunteers"}

func TestSyncGroupToChannel_AddsBeforeRemoves(t *testing.T) {
	recon, m := newTestReconciler(t)

	// group holds contacts 1 and 2; channel holds u2 and u3
	m.crm.EXPECT().ActiveGroupContacts(gomock.Any(), int64(1)).
		Return([]models.GroupContact{
			{ID: 11, GroupID: 1, ContactID: 1, Status: models.StatusAdded},
			{ID: 12, GroupID: 1, ContactID: 2, Status: models.StatusAdded},
		}, nil)
	m.chat.EXPECT().ChannelMembers(gomock.Any(), "ch1").
		Return([]models.ChannelMember{
			{ChannelID: "ch1", UserID: "u2"},
			{ChannelID: "ch1", UserID: "u3"},
		}, nil)

	m.prov.EXPECT().EnsureUser(gomock.Any(), int64(1)).
		Return(models.ChatUser{ID: "u1", Username: "jane-smith"}, false, nil)
	m.prov.EXPECT().EnsureUser(gomock.Any(), int64(2)).
		Return(models.ChatUser{ID: "u2", Username: "bob-jones"}, false, nil)

	m.chat.EXPECT().Team(gomock.Any(), "main").Return(models.Team{ID: "t1", Name: "main"}, nil)

	m.links.EXPECT().ContactIDForUser(gomock.Any(), "u2").Return(int64(2), nil)
	m.links.EXPECT().ContactIDForUser(gomock.Any(), "u3").Return(int64(3), nil)

	gomock.InOrder(
		m.chat.EXPECT().AddTeamMember(gomock.Any(), "t1", "u1").Return(nil),
		m.chat.EXPECT().AddChannelMember(gomock.Any(), "ch1", "u1").Return(nil),
		m.chat.EXPECT().RemoveChannelMember(gomock.Any(), "ch1", "u3").Return(nil),
	)

	report, err := recon.SyncGroupToChannel(context.Background(), testLink)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Added)
	assert.Equal(t, 1, report.Removed)
	assert.Equal(t, 2, report.Skipped)
	assert.Equal(t, 0, report.Failed)
}

func TestSyncGroupToChannel_SecondRunConverges(t *testing.T) {
	recon, m := newTestReconciler(t)

	m.crm.EXPECT().ActiveGroupContacts(gomock.Any(), int64(1)).
		Return([]models.GroupContact{{ID: 11, GroupID: 1, ContactID: 1, Status: models.StatusAdded}}, nil)
	m.chat.EXPECT().ChannelMembers(gomock.Any(), "ch1").
		Return([]models.ChannelMember{{ChannelID: "ch1", UserID: "u1"}}, nil)
	m.prov.EXPECT().EnsureUser(gomock.Any(), int64(1)).
		Return(models.ChatUser{ID: "u1"}, false, nil)
	m.links.EXPECT().ContactIDForUser(gomock.Any(), "u1").Return(int64(1), nil)

	report, err := recon.SyncGroupToChannel(context.Background(), testLink)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Added)
	assert.Equal(t, 0, report.Removed)
	assert.Equal(t, 2, report.Skipped)
}

func TestSyncGroupToChannel_UnlinkedMemberUntouched(t *testing.T) {
	recon, m := newTestReconciler(t)

	m.crm.EXPECT().ActiveGroupContacts(gomock.Any(), int64(1)).
		Return(nil, nil)
	m.chat.EXPECT().ChannelMembers(gomock.Any(), "ch1").
		Return([]models.ChannelMember{
			{ChannelID: "ch1", UserID: "u8"},
			{ChannelID: "ch1", UserID: "u9"},
		}, nil)
	m.links.EXPECT().ContactIDForUser(gomock.Any(), "u8").
		Return(int64(0), store.ErrLinkNotFound)
	m.links.EXPECT().ContactIDForUser(gomock.Any(), "u9").
		Return(int64(0), store.ErrAmbiguousLink)

	report, err := recon.SyncGroupToChannel(context.Background(), testLink)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Removed)
	assert.Equal(t, 2, report.Skipped)
}

func TestSyncGroupToChannel_ProvisionFailureKeepsExistingMember(t *testing.T) {
	recon, m := newTestReconciler(t)

	m.crm.EXPECT().ActiveGroupContacts(gomock.Any(), int64(1)).
		Return([]models.GroupContact{{ID: 11, GroupID: 1, ContactID: 1, Status: models.StatusAdded}}, nil)
	m.chat.EXPECT().ChannelMembers(gomock.Any(), "ch1").
		Return([]models.ChannelMember{{ChannelID: "ch1", UserID: "u1"}}, nil)
	m.prov.EXPECT().EnsureUser(gomock.Any(), int64(1)).
		Return(models.ChatUser{}, false, assert.AnError)
	m.links.EXPECT().ContactIDForUser(gomock.Any(), "u1").Return(int64(1), nil)

	// the contact is still wanted, so its existing membership must survive
	// the failed provisioning attempt
	report, err := recon.SyncGroupToChannel(context.Background(), testLink)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 0, report.Removed)
}

func TestSyncChannelToGroup(t *testing.T) {
	recon, m := newTestReconciler(t)

	// channel holds u1 (no CRM row), u2 (Removed row), u3 (unlinked);
	// group holds contacts 1 (kept) and 4 (user left the channel)
	m.chat.EXPECT().ChannelMembers(gomock.Any(), "ch1").
		Return([]models.ChannelMember{
			{ChannelID: "ch1", UserID: "u1"},
			{ChannelID: "ch1", UserID: "u2"},
			{ChannelID: "ch1", UserID: "u3"},
		}, nil)
	m.crm.EXPECT().ActiveGroupContacts(gomock.Any(), int64(1)).
		Return([]models.GroupContact{
			{ID: 11, GroupID: 1, ContactID: 1, Status: models.StatusAdded},
			{ID: 14, GroupID: 1, ContactID: 4, Status: models.StatusAdded},
		}, nil)

	m.links.EXPECT().ContactIDForUser(gomock.Any(), "u1").Return(int64(1), nil)
	m.links.EXPECT().ContactIDForUser(gomock.Any(), "u2").Return(int64(2), nil)
	m.links.EXPECT().ContactIDForUser(gomock.Any(), "u3").
		Return(int64(0), store.ErrLinkNotFound)

	m.crm.EXPECT().GroupContact(gomock.Any(), int64(1), int64(1)).
		Return(models.GroupContact{}, adapter.ErrNotFound)
	m.crm.EXPECT().CreateGroupContact(gomock.Any(), int64(1), int64(1)).
		Return(models.GroupContact{ID: 21, GroupID: 1, ContactID: 1, Status: models.StatusAdded}, nil)

	m.crm.EXPECT().GroupContact(gomock.Any(), int64(1), int64(2)).
		Return(models.GroupContact{ID: 12, GroupID: 1, ContactID: 2, Status: models.StatusRemoved}, nil)
	m.crm.EXPECT().SetGroupContactStatus(gomock.Any(), int64(12), models.StatusAdded).Return(nil)

	m.links.EXPECT().UserIDForContact(gomock.Any(), int64(1)).Return("u1", nil)
	m.links.EXPECT().UserIDForContact(gomock.Any(), int64(4)).Return("u4", nil)
	m.crm.EXPECT().SetGroupContactStatus(gomock.Any(), int64(14), models.StatusRemoved).Return(nil)

	report, err := recon.SyncChannelToGroup(context.Background(), testLink)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Added)
	assert.Equal(t, 1, report.Removed)
	assert.Equal(t, 2, report.Skipped)
}

func TestSyncChannelToGroup_UnprovisionedContactKept(t *testing.T) {
	recon, m := newTestReconciler(t)

	m.chat.EXPECT().ChannelMembers(gomock.Any(), "ch1").Return(nil, nil)
	m.crm.EXPECT().ActiveGroupContacts(gomock.Any(), int64(1)).
		Return([]models.GroupContact{{ID: 11, GroupID: 1, ContactID: 5, Status: models.StatusAdded}}, nil)
	m.links.EXPECT().UserIDForContact(gomock.Any(), int64(5)).
		Return("", store.ErrLinkNotFound)

	report, err := recon.SyncChannelToGroup(context.Background(), testLink)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Removed)
	assert.Equal(t, 1, report.Skipped)
}

func TestAddMemberToChat_ChecksMembershipFirst(t *testing.T) {
	recon, m := newTestReconciler(t)

	m.prov.EXPECT().EnsureUser(gomock.Any(), int64(1)).
		Return(models.ChatUser{ID: "u1"}, false, nil)
	m.chat.EXPECT().ChannelMember(gomock.Any(), "ch1", "u1").
		Return(models.ChannelMember{ChannelID: "ch1", UserID: "u1"}, nil)

	action := recon.AddMemberToChat(context.Background(), testLink, 1)
	assert.Equal(t, models.OpSkip, action.Op)
	assert.False(t, action.Failed())
}

func TestAddMemberToChat_JoinsTeamThenChannel(t *testing.T) {
	recon, m := newTestReconciler(t)

	m.prov.EXPECT().EnsureUser(gomock.Any(), int64(1)).
		Return(models.ChatUser{ID: "u1"}, false, nil)
	m.chat.EXPECT().ChannelMember(gomock.Any(), "ch1", "u1").
		Return(models.ChannelMember{}, adapter.ErrNotFound)
	m.chat.EXPECT().Team(gomock.Any(), "main").Return(models.Team{ID: "t1"}, nil)

	gomock.InOrder(
		m.chat.EXPECT().AddTeamMember(gomock.Any(), "t1", "u1").Return(nil),
		m.chat.EXPECT().AddChannelMember(gomock.Any(), "ch1", "u1").Return(nil),
	)

	action := recon.AddMemberToChat(context.Background(), testLink, 1)
	assert.Equal(t, models.OpAdd, action.Op)
	assert.False(t, action.Failed())
}

func TestAddMemberToChat_NewAccountTaggedProvision(t *testing.T) {
	recon, m := newTestReconciler(t)

	m.prov.EXPECT().EnsureUser(gomock.Any(), int64(1)).
		Return(models.ChatUser{ID: "u1", Username: "jane-smith"}, true, nil)
	m.chat.EXPECT().ChannelMember(gomock.Any(), "ch1", "u1").
		Return(models.ChannelMember{}, adapter.ErrNotFound)
	m.chat.EXPECT().Team(gomock.Any(), "main").Return(models.Team{ID: "t1"}, nil)
	m.chat.EXPECT().AddTeamMember(gomock.Any(), "t1", "u1").Return(nil)
	m.chat.EXPECT().AddChannelMember(gomock.Any(), "ch1", "u1").Return(nil)

	action := recon.AddMemberToChat(context.Background(), testLink, 1)
	assert.Equal(t, models.OpProvision, action.Op)
	assert.False(t, action.Failed())

	var report models.SyncReport
	report.Record(action)
	assert.Equal(t, 1, report.Added)
}

func TestRemoveFromChatIfAbsent_StillActiveSkips(t *testing.T) {
	recon, m := newTestReconciler(t)

	m.links.EXPECT().ContactIDForUser(gomock.Any(), "u1").Return(int64(1), nil)
	m.crm.EXPECT().GroupContact(gomock.Any(), int64(1), int64(1)).
		Return(models.GroupContact{ID: 11, Status: models.StatusAdded}, nil)

	action := recon.RemoveFromChatIfAbsent(context.Background(), testLink, "u1")
	assert.Equal(t, models.OpSkip, action.Op)
}

func TestRemoveFromChatIfAbsent_RemovesDeparted(t *testing.T) {
	recon, m := newTestReconciler(t)

	m.links.EXPECT().ContactIDForUser(gomock.Any(), "u1").Return(int64(1), nil)
	m.crm.EXPECT().GroupContact(gomock.Any(), int64(1), int64(1)).
		Return(models.GroupContact{ID: 11, Status: models.StatusRemoved}, nil)
	m.chat.EXPECT().RemoveChannelMember(gomock.Any(), "ch1", "u1").Return(nil)

	action := recon.RemoveFromChatIfAbsent(context.Background(), testLink, "u1")
	assert.Equal(t, models.OpRemove, action.Op)
	assert.False(t, action.Failed())
}

func TestRemoveFromCRMIfAbsent_StillMemberSkips(t *testing.T) {
	recon, m := newTestReconciler(t)

	gc := models.GroupContact{ID: 11, GroupID: 1, ContactID: 1, Status: models.StatusAdded}
	m.links.EXPECT().UserIDForContact(gomock.Any(), int64(1)).Return("u1", nil)
	m.chat.EXPECT().ChannelMember(gomock.Any(), "ch1", "u1").
		Return(models.ChannelMember{ChannelID: "ch1", UserID: "u1"}, nil)

	action := recon.RemoveFromCRMIfAbsent(context.Background(), testLink, gc)
	assert.Equal(t, models.OpSkip, action.Op)
}

func TestRemoveFromCRMIfAbsent_FlipsStatus(t *testing.T) {
	recon, m := newTestReconciler(t)

	gc := models.GroupContact{ID: 11, GroupID: 1, ContactID: 1, Status: models.StatusAdded}
	m.links.EXPECT().UserIDForContact(gomock.Any(), int64(1)).Return("u1", nil)
	m.chat.EXPECT().ChannelMember(gomock.Any(), "ch1", "u1").
		Return(models.ChannelMember{}, adapter.ErrNotFound)
	m.crm.EXPECT().SetGroupContactStatus(gomock.Any(), int64(11), models.StatusRemoved).Return(nil)

	action := recon.RemoveFromCRMIfAbsent(context.Background(), testLink, gc)
	assert.Equal(t, models.OpRemove, action.Op)
	assert.False(t, action.Failed())
}
