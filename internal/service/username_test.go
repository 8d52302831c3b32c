package service

import (
	"context"
	"errors"
	"testing"

	"github.com/civibridge/mattersync/internal/adapter"
	"github.com/civibridge/mattersync/internal/mock"
	"github.com/civibridge/mattersync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "volunteers", want: "volunteers"},
		{name: "spaces and case", input: "Volunteer Team", want: "volunteer-team"},
		{name: "punctuation folded", input: "Jane  O'Brien!", want: "jane-o-brien"},
		{name: "leading and trailing separators", input: "  --Board--  ", want: "board"},
		{name: "digits kept", input: "Chapter 42", want: "chapter-42"},
		{name: "nothing usable", input: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slugify(tt.input))
		})
	}
}

func TestUsernameBase(t *testing.T) {
	tests := []struct {
		name    string
		contact models.Contact
		want    string
	}{
		{
			name:    "first and last name",
			contact: models.Contact{ID: 7, FirstName: "Jane", LastName: "Smith"},
			want:    "jane-smith",
		},
		{
			name:    "display name fallback",
			contact: models.Contact{ID: 7, DisplayName: "ACME Corp."},
			want:    "acme-corp",
		},
		{
			name:    "synthetic fallback",
			contact: models.Contact{ID: 7},
			want:    "contact-7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, usernameBase(tt.contact))
		})
	}
}

func TestUniqueUsername_FirstCandidateFree(t *testing.T) {
	ctrl := gomock.NewController(t)
	chat := mock.NewMockChatDirectory(ctrl)

	chat.EXPECT().UserByUsername(gomock.Any(), "jane-smith").
		Return(models.ChatUser{}, adapter.ErrNotFound)

	name, err := uniqueUsername(context.Background(), chat, "jane-smith")
	require.NoError(t, err)
	assert.Equal(t, "jane-smith", name)
}

func TestUniqueUsername_SuffixOnCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	chat := mock.NewMockChatDirectory(ctrl)

	chat.EXPECT().UserByUsername(gomock.Any(), "jane-smith").
		Return(models.ChatUser{ID: "u1", Username: "jane-smith"}, nil)
	chat.EXPECT().UserByUsername(gomock.Any(), "jane-smith-1").
		Return(models.ChatUser{}, adapter.ErrNotFound)

	name, err := uniqueUsername(context.Background(), chat, "jane-smith")
	require.NoError(t, err)
	assert.Equal(t, "jane-smith-1", name)
}

func TestUniqueUsername_ProbeErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	chat := mock.NewMockChatDirectory(ctrl)

	probeErr := errors.New("http 500: upstream down")
	chat.EXPECT().UserByUsername(gomock.Any(), "jane-smith").
		Return(models.ChatUser{}, probeErr)

	_, err := uniqueUsername(context.Background(), chat, "jane-smith")
	require.ErrorIs(t, err, probeErr)
}
