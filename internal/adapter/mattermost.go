// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CiviBridge Authors

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/civibridge/mattersync/models"
	"github.com/go-resty/resty/v2"
)

// perPageAll is the page size used when a listing should return everything.
// Mattermost paginates all collection endpoints; community-scale directories
// never approach this count, so one page is effectively the full set.
const perPageAll = 10000

// ChatClientConfig configures the Mattermost REST facade.
type ChatClientConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type chatDirectory struct {
	client *resty.Client
}

// NewChatDirectory constructs a [ChatDirectory] talking to the Mattermost
// REST API v4 with the given service account token.
func NewChatDirectory(cfg ChatClientConfig) ChatDirectory {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/") + "/api/v4").
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.Token)

	return &chatDirectory{client: cli}
}

func (c *chatDirectory) Team(ctx context.Context, name string) (models.Team, error) {
	resp, err := c.client.R().SetContext(ctx).Get("/teams/name/" + name)
	if err != nil {
		return models.Team{}, fmt.Errorf("get team request: %w", err)
	}
	if err = mapChatError(resp); err != nil {
		return models.Team{}, err
	}

	var team models.Team
	if err = json.Unmarshal(resp.Body(), &team); err != nil {
		return models.Team{}, fmt.Errorf("decode team response: %w", err)
	}
	return team, nil
}

func (c *chatDirectory) User(ctx context.Context, userID string) (models.ChatUser, error) {
	resp, err := c.client.R().SetContext(ctx).Get("/users/" + userID)
	if err != nil {
		return models.ChatUser{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapChatError(resp); err != nil {
		return models.ChatUser{}, err
	}

	var user models.ChatUser
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.ChatUser{}, fmt.Errorf("decode user response: %w", err)
	}
	return user, nil
}

func (c *chatDirectory) UserByEmail(ctx context.Context, email string) (models.ChatUser, error) {
	resp, err := c.client.R().SetContext(ctx).Get("/users/email/" + email)
	if err != nil {
		return models.ChatUser{}, fmt.Errorf("get user by email request: %w", err)
	}
	if err = mapChatError(resp); err != nil {
		return models.ChatUser{}, err
	}

	var user models.ChatUser
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.ChatUser{}, fmt.Errorf("decode user response: %w", err)
	}
	return user, nil
}

func (c *chatDirectory) UserByUsername(ctx context.Context, username string) (models.ChatUser, error) {
	resp, err := c.client.R().SetContext(ctx).Get("/users/username/" + username)
	if err != nil {
		return models.ChatUser{}, fmt.Errorf("get user by username request: %w", err)
	}
	if err = mapChatError(resp); err != nil {
		return models.ChatUser{}, err
	}

	var user models.ChatUser
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.ChatUser{}, fmt.Errorf("decode user response: %w", err)
	}
	return user, nil
}

func (c *chatDirectory) CreateUser(ctx context.Context, user models.ChatUser, password string) (models.ChatUser, error) {
	body := map[string]any{
		"email":      user.Email,
		"username":   user.Username,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"nickname":   user.Nickname,
		"password":   password,
	}

	resp, err := c.client.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/users")
	if err != nil {
		return models.ChatUser{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapChatError(resp); err != nil {
		return models.ChatUser{}, err
	}

	var created models.ChatUser
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.ChatUser{}, fmt.Errorf("decode created user response: %w", err)
	}
	return created, nil
}

func (c *chatDirectory) SetUserActive(ctx context.Context, userID string, active bool) error {
	resp, err := c.client.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]bool{"active": active}).
		Put("/users/" + userID + "/active")
	if err != nil {
		return fmt.Errorf("set user active request: %w", err)
	}

	return mapChatError(resp)
}

func (c *chatDirectory) SetUserPassword(ctx context.Context, userID, password string) error {
	resp, err := c.client.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"new_password": password}).
		Put("/users/" + userID + "/password")
	if err != nil {
		return fmt.Errorf("set user password request: %w", err)
	}

	return mapChatError(resp)
}

func (c *chatDirectory) Channel(ctx context.Context, channelID string) (models.Channel, error) {
	resp, err := c.client.R().SetContext(ctx).Get("/channels/" + channelID)
	if err != nil {
		return models.Channel{}, fmt.Errorf("get channel request: %w", err)
	}
	if err = mapChatError(resp); err != nil {
		return models.Channel{}, err
	}

	var channel models.Channel
	if err = json.Unmarshal(resp.Body(), &channel); err != nil {
		return models.Channel{}, fmt.Errorf("decode channel response: %w", err)
	}
	return channel, nil
}

func (c *chatDirectory) CreateChannel(ctx context.Context, channel models.Channel) (models.Channel, error) {
	body := map[string]any{
		"team_id":      channel.TeamID,
		"name":         channel.Name,
		"display_name": channel.DisplayName,
		"type":         string(channel.Type),
	}

	resp, err := c.client.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/channels")
	if err != nil {
		return models.Channel{}, fmt.Errorf("create channel request: %w", err)
	}
	if err = mapChatError(resp); err != nil {
		return models.Channel{}, err
	}

	var created models.Channel
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Channel{}, fmt.Errorf("decode created channel response: %w", err)
	}
	return created, nil
}

func (c *chatDirectory) ChannelMembers(ctx context.Context, channelID string) ([]models.ChannelMember, error) {
	resp, err := c.client.R().SetContext(ctx).
		SetQueryParam("page", "0").
		SetQueryParam("per_page", fmt.Sprint(perPageAll)).
		Get("/channels/" + channelID + "/members")
	if err != nil {
		return nil, fmt.Errorf("get channel members request: %w", err)
	}
	if err = mapChatError(resp); err != nil {
		return nil, err
	}

	var members []models.ChannelMember
	if err = json.Unmarshal(resp.Body(), &members); err != nil {
		return nil, fmt.Errorf("decode channel members response: %w", err)
	}
	return members, nil
}

func (c *chatDirectory) ChannelMember(ctx context.Context, channelID, userID string) (models.ChannelMember, error) {
	resp, err := c.client.R().SetContext(ctx).Get("/channels/" + channelID + "/members/" + userID)
	if err != nil {
		return models.ChannelMember{}, fmt.Errorf("get channel member request: %w", err)
	}
	if err = mapChatError(resp); err != nil {
		return models.ChannelMember{}, err
	}

	var member models.ChannelMember
	if err = json.Unmarshal(resp.Body(), &member); err != nil {
		return models.ChannelMember{}, fmt.Errorf("decode channel member response: %w", err)
	}
	return member, nil
}

func (c *chatDirectory) AddChannelMember(ctx context.Context, channelID, userID string) error {
	resp, err := c.client.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"user_id": userID}).
		Post("/channels/" + channelID + "/members")
	if err != nil {
		return fmt.Errorf("add channel member request: %w", err)
	}

	return mapChatError(resp)
}

func (c *chatDirectory) RemoveChannelMember(ctx context.Context, channelID, userID string) error {
	resp, err := c.client.R().SetContext(ctx).
		Delete("/channels/" + channelID + "/members/" + userID)
	if err != nil {
		return fmt.Errorf("remove channel member request: %w", err)
	}

	return mapChatError(resp)
}

func (c *chatDirectory) AddTeamMember(ctx context.Context, teamID, userID string) error {
	resp, err := c.client.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"team_id": teamID, "user_id": userID}).
		Post("/teams/" + teamID + "/members")
	if err != nil {
		return fmt.Errorf("add team member request: %w", err)
	}

	return mapChatError(resp)
}

func (c *chatDirectory) ChannelsForUser(ctx context.Context, teamID, userID string) ([]models.Channel, error) {
	resp, err := c.client.R().SetContext(ctx).
		Get("/users/" + userID + "/teams/" + teamID + "/channels")
	if err != nil {
		return nil, fmt.Errorf("get channels for user request: %w", err)
	}
	if err = mapChatError(resp); err != nil {
		return nil, err
	}

	var channels []models.Channel
	if err = json.Unmarshal(resp.Body(), &channels); err != nil {
		return nil, fmt.Errorf("decode channels for user response: %w", err)
	}
	return channels, nil
}
