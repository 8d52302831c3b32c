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

// CRMClientConfig configures the CiviCRM APIv4 facade.
type CRMClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type crmDirectory struct {
	client *resty.Client
}

// NewCRMDirectory constructs a [CRMDirectory] talking to the CiviCRM APIv4
// REST endpoint. Every call is a POST of form-encoded api4 parameters to
// /civicrm/ajax/api4/{Entity}/{action}, authenticated with the site API key.
func NewCRMDirectory(cfg CRMClientConfig) CRMDirectory {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/") + "/civicrm/ajax/api4").
		SetTimeout(cfg.Timeout).
		SetHeader("X-Civi-Auth", "Bearer "+cfg.APIKey)

	return &crmDirectory{client: cli}
}

// crmEnvelope is the api4 response wrapper.
type crmEnvelope struct {
	Values json.RawMessage `json:"values"`
	Count  int             `json:"count"`
}

type crmGroup struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

type crmContact struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email_primary.email"`
}

type crmGroupContact struct {
	ID        int64  `json:"id"`
	GroupID   int64  `json:"group_id"`
	ContactID int64  `json:"contact_id"`
	Status    string `json:"status"`
}

// call executes one api4 action and unmarshals the values array into out
// (a pointer to a slice) when out is non-nil.
func (c *crmDirectory) call(ctx context.Context, entity, action string, params map[string]any, out any) error {
	payload, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("encode %s.%s params: %w", entity, action, err)
	}

	resp, err := c.client.R().SetContext(ctx).
		SetFormData(map[string]string{"params": string(payload)}).
		Post("/" + entity + "/" + action)
	if err != nil {
		return fmt.Errorf("%s.%s request: %w", entity, action, err)
	}
	if err = mapCRMError(resp); err != nil {
		return fmt.Errorf("%s.%s: %w", entity, action, err)
	}

	if out == nil {
		return nil
	}

	var envelope crmEnvelope
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("decode %s.%s response: %w", entity, action, err)
	}
	if len(envelope.Values) == 0 {
		return nil
	}
	if err = json.Unmarshal(envelope.Values, out); err != nil {
		return fmt.Errorf("decode %s.%s values: %w", entity, action, err)
	}
	return nil
}

func (c *crmDirectory) Group(ctx context.Context, groupID int64) (models.Group, error) {
	params := map[string]any{
		"select": []string{"id", "name", "title"},
		"where":  [][]any{{"id", "=", groupID}},
		"limit":  1,
	}

	var rows []crmGroup
	if err := c.call(ctx, "Group", "get", params, &rows); err != nil {
		return models.Group{}, err
	}
	if len(rows) == 0 {
		return models.Group{}, fmt.Errorf("%w: group %d", ErrNotFound, groupID)
	}

	return models.Group{ID: rows[0].ID, Name: rows[0].Name, Title: rows[0].Title}, nil
}

func (c *crmDirectory) CreateGroup(ctx context.Context, title string) (models.Group, error) {
	params := map[string]any{
		"values": map[string]any{"title": title},
	}

	var rows []crmGroup
	if err := c.call(ctx, "Group", "create", params, &rows); err != nil {
		return models.Group{}, err
	}
	if len(rows) == 0 {
		return models.Group{}, fmt.Errorf("create group: empty api response")
	}

	return models.Group{ID: rows[0].ID, Name: rows[0].Name, Title: rows[0].Title}, nil
}

func (c *crmDirectory) Contact(ctx context.Context, contactID int64) (models.Contact, error) {
	params := map[string]any{
		"select": []string{"id", "first_name", "last_name", "display_name", "email_primary.email"},
		"where":  [][]any{{"id", "=", contactID}},
		"limit":  1,
	}

	var rows []crmContact
	if err := c.call(ctx, "Contact", "get", params, &rows); err != nil {
		return models.Contact{}, err
	}
	if len(rows) == 0 {
		return models.Contact{}, fmt.Errorf("%w: contact %d", ErrNotFound, contactID)
	}

	row := rows[0]
	return models.Contact{
		ID:          row.ID,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		DisplayName: row.DisplayName,
		Email:       row.Email,
	}, nil
}

func (c *crmDirectory) ActiveGroupContacts(ctx context.Context, groupID int64) ([]models.GroupContact, error) {
	params := map[string]any{
		"select": []string{"id", "group_id", "contact_id", "status"},
		"where": [][]any{
			{"group_id", "=", groupID},
			{"status", "=", string(models.StatusAdded)},
		},
		"limit": 0,
	}

	var rows []crmGroupContact
	if err := c.call(ctx, "GroupContact", "get", params, &rows); err != nil {
		return nil, err
	}

	return toGroupContacts(rows), nil
}

func (c *crmDirectory) ActiveGroupContactsPage(ctx context.Context, groupIDs []int64, limit, offset int) ([]models.GroupContact, error) {
	params := map[string]any{
		"select": []string{"id", "group_id", "contact_id", "status"},
		"where": [][]any{
			{"group_id", "IN", groupIDs},
			{"status", "=", string(models.StatusAdded)},
		},
		"orderBy": map[string]string{"id": "ASC"},
		"limit":   limit,
		"offset":  offset,
	}

	var rows []crmGroupContact
	if err := c.call(ctx, "GroupContact", "get", params, &rows); err != nil {
		return nil, err
	}

	return toGroupContacts(rows), nil
}

func (c *crmDirectory) GroupContact(ctx context.Context, groupID, contactID int64) (models.GroupContact, error) {
	params := map[string]any{
		"select": []string{"id", "group_id", "contact_id", "status"},
		"where": [][]any{
			{"group_id", "=", groupID},
			{"contact_id", "=", contactID},
		},
		"limit": 1,
	}

	var rows []crmGroupContact
	if err := c.call(ctx, "GroupContact", "get", params, &rows); err != nil {
		return models.GroupContact{}, err
	}
	if len(rows) == 0 {
		return models.GroupContact{}, fmt.Errorf("%w: group %d contact %d", ErrNotFound, groupID, contactID)
	}

	return toGroupContact(rows[0]), nil
}

func (c *crmDirectory) CreateGroupContact(ctx context.Context, groupID, contactID int64) (models.GroupContact, error) {
	params := map[string]any{
		"values": map[string]any{
			"group_id":   groupID,
			"contact_id": contactID,
			"status":     string(models.StatusAdded),
		},
	}

	var rows []crmGroupContact
	if err := c.call(ctx, "GroupContact", "create", params, &rows); err != nil {
		return models.GroupContact{}, err
	}
	if len(rows) == 0 {
		return models.GroupContact{}, fmt.Errorf("create group contact: empty api response")
	}

	created := toGroupContact(rows[0])
	// api4 create echoes the inserted values; status may be omitted
	if created.Status == "" {
		created.Status = models.StatusAdded
	}
	return created, nil
}

func (c *crmDirectory) SetGroupContactStatus(ctx context.Context, rowID int64, status models.MembershipStatus) error {
	params := map[string]any{
		"where":  [][]any{{"id", "=", rowID}},
		"values": map[string]any{"status": string(status)},
	}

	return c.call(ctx, "GroupContact", "update", params, nil)
}

func toGroupContacts(rows []crmGroupContact) []models.GroupContact {
	out := make([]models.GroupContact, 0, len(rows))
	for _, row := range rows {
		out = append(out, toGroupContact(row))
	}
	return out
}

func toGroupContact(row crmGroupContact) models.GroupContact {
	return models.GroupContact{
		ID:        row.ID,
		GroupID:   row.GroupID,
		ContactID: row.ContactID,
		Status:    models.MembershipStatus(row.Status),
	}
}
