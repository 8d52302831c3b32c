package service

import (
	"context"
	"testing"

	"github.com/civibridge/mattersync/internal/config"
	"github.com/civibridge/mattersync/internal/logger"
	"github.com/civibridge/mattersync/internal/mock"
	"github.com/civibridge/mattersync/internal/store"
	"github.com/civibridge/mattersync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type syncFixture struct {
	svc   SyncService
	crm   *mock.MockCRMDirectory
	chat  *mock.MockChatDirectory
	links *mock.MockLinkStore
	recon *mock.MockReconciler
}

func newSyncFixture(t *testing.T) *syncFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &syncFixture{
		crm:   mock.NewMockCRMDirectory(ctrl),
		chat:  mock.NewMockChatDirectory(ctrl),
		links: mock.NewMockLinkStore(ctrl),
		recon: mock.NewMockReconciler(ctrl),
	}
	storages := &store.Storages{
		Links:   f.links,
		Cursors: newMemCursorStore(),
		Leases:  &memLeaseStore{},
	}
	f.svc = NewSyncService(
		f.crm, f.chat, storages, f.recon, mock.NewMockProvisioner(ctrl),
		config.Sync{ChannelType: "P"},
		config.Chat{BaseURL: "https://chat.example.org/", TeamName: "main"},
		logger.Nop(),
	)
	return f
}

func TestFullSync_MergesPairReports(t *testing.T) {
	f := newSyncFixture(t)

	link1 := models.ChannelLink{GroupID: 1, ChannelID: "ch1"}
	link2 := models.ChannelLink{GroupID: 2, ChannelID: "ch2"}
	f.links.EXPECT().ChannelLinks(gomock.Any()).
		Return([]models.ChannelLink{link1, link2}, nil)

	f.recon.EXPECT().SyncGroupToChannel(gomock.Any(), link1).
		Return(models.SyncReport{Added: 2, Skipped: 1}, nil)
	f.recon.EXPECT().SyncGroupToChannel(gomock.Any(), link2).
		Return(models.SyncReport{}, assert.AnError)

	report, err := f.svc.FullSync(context.Background(), models.DirectionToChat)
	require.NoError(t, err, "a pair failure must not abort the run")
	assert.Equal(t, 2, report.Added)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, report.Failed)
}

func TestFullSync_ChatToCRM(t *testing.T) {
	f := newSyncFixture(t)

	link := models.ChannelLink{GroupID: 1, ChannelID: "ch1"}
	f.links.EXPECT().ChannelLinks(gomock.Any()).Return([]models.ChannelLink{link}, nil)
	f.recon.EXPECT().SyncChannelToGroup(gomock.Any(), link).
		Return(models.SyncReport{Removed: 1}, nil)

	report, err := f.svc.FullSync(context.Background(), models.DirectionToCRM)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Removed)
}

func TestFullSync_UnknownDirection(t *testing.T) {
	f := newSyncFixture(t)

	_, err := f.svc.FullSync(context.Background(), models.Direction("sideways"))
	require.ErrorIs(t, err, ErrUnknownDirection)
}

func TestAddContactToChannel(t *testing.T) {
	f := newSyncFixture(t)

	link := models.ChannelLink{GroupID: 1, ChannelID: "ch1"}
	f.links.EXPECT().ChannelForGroup(gomock.Any(), int64(1)).Return(link, nil)
	f.recon.EXPECT().AddMemberToChat(gomock.Any(), link, int64(7)).
		Return(models.SyncAction{Op: models.OpAdd, UserID: "u1"})

	require.NoError(t, f.svc.AddContactToChannel(context.Background(), 1, 7))
}

func TestAddContactToChannel_GroupNotLinked(t *testing.T) {
	f := newSyncFixture(t)

	f.links.EXPECT().ChannelForGroup(gomock.Any(), int64(5)).
		Return(models.ChannelLink{}, store.ErrLinkNotFound)

	err := f.svc.AddContactToChannel(context.Background(), 5, 7)
	require.ErrorIs(t, err, ErrGroupNotLinked)
}

func TestRemoveContactFromChannel_UnprovisionedIsNoop(t *testing.T) {
	f := newSyncFixture(t)

	link := models.ChannelLink{GroupID: 1, ChannelID: "ch1"}
	f.links.EXPECT().ChannelForGroup(gomock.Any(), int64(1)).Return(link, nil)
	f.links.EXPECT().UserIDForContact(gomock.Any(), int64(7)).
		Return("", store.ErrLinkNotFound)

	require.NoError(t, f.svc.RemoveContactFromChannel(context.Background(), 1, 7))
}

func TestRemoveContactFromChannel(t *testing.T) {
	f := newSyncFixture(t)

	link := models.ChannelLink{GroupID: 1, ChannelID: "ch1"}
	f.links.EXPECT().ChannelForGroup(gomock.Any(), int64(1)).Return(link, nil)
	f.links.EXPECT().UserIDForContact(gomock.Any(), int64(7)).Return("u1", nil)
	f.recon.EXPECT().RemoveFromChatIfAbsent(gomock.Any(), link, "u1").
		Return(models.SyncAction{Op: models.OpRemove, UserID: "u1"})

	require.NoError(t, f.svc.RemoveContactFromChannel(context.Background(), 1, 7))
}

func TestLinkGroupToNewChannel(t *testing.T) {
	f := newSyncFixture(t)

	f.crm.EXPECT().Group(gomock.Any(), int64(3)).
		Return(models.Group{ID: 3, Name: "volunteer_team", Title: "Volunteer Team"}, nil)
	f.chat.EXPECT().Team(gomock.Any(), "main").
		Return(models.Team{ID: "t1", Name: "main"}, nil)
	f.chat.EXPECT().CreateChannel(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, channel models.Channel) (models.Channel, error) {
			assert.Equal(t, "t1", channel.TeamID)
			assert.Equal(t, "volunteer-team", channel.Name)
			assert.Equal(t, "Volunteer Team", channel.DisplayName)
			assert.Equal(t, models.ChannelTypePrivate, channel.Type)
			channel.ID = "ch3"
			return channel, nil
		})
	f.links.EXPECT().SetChannelLink(gomock.Any(), models.ChannelLink{
		GroupID:     3,
		ChannelID:   "ch3",
		ChannelName: "volunteer-team",
		ChannelURL:  "https://chat.example.org/main/channels/volunteer-team",
	}).Return(nil)

	link, err := f.svc.LinkGroupToNewChannel(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "https://chat.example.org/main/channels/volunteer-team", link.ChannelURL)
}

func TestLinkChannelToNewGroup(t *testing.T) {
	f := newSyncFixture(t)

	f.chat.EXPECT().Channel(gomock.Any(), "ch9").
		Return(models.Channel{ID: "ch9", TeamID: "t1", Name: "board", DisplayName: "Board"}, nil)
	f.chat.EXPECT().Team(gomock.Any(), "main").
		Return(models.Team{ID: "t1", Name: "main"}, nil)
	f.crm.EXPECT().CreateGroup(gomock.Any(), "Board").
		Return(models.Group{ID: 9, Title: "Board"}, nil)
	f.links.EXPECT().SetChannelLink(gomock.Any(), models.ChannelLink{
		GroupID:     9,
		ChannelID:   "ch9",
		ChannelName: "board",
		ChannelURL:  "https://chat.example.org/main/channels/board",
	}).Return(nil)

	link, err := f.svc.LinkChannelToNewGroup(context.Background(), "ch9")
	require.NoError(t, err)
	assert.Equal(t, int64(9), link.GroupID)
}

func TestUnlinkGroup(t *testing.T) {
	f := newSyncFixture(t)

	f.links.EXPECT().ClearChannelLink(gomock.Any(), int64(3)).Return(nil)

	require.NoError(t, f.svc.UnlinkGroup(context.Background(), 3))
}
