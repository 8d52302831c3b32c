package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// chatAPIError is the error envelope Mattermost returns on non-2xx
// responses.
type chatAPIError struct {
	ID         string `json:"id"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

// chatAbsenceIDs are the Mattermost application error ids that mark a 404 as
// a clean "record does not exist" answer. 404s with any other id (notably
// api.context.404.app_error, which means the route itself was wrong) are
// reported as failures.
var chatAbsenceIDs = map[string]struct{}{
	"app.user.missing_account.const":             {},
	"app.user.get_by_username.app_error":         {},
	"app.channel.get.existing.app_error":         {},
	"app.channel.get_channels.not_found.app_error": {},
	"app.team.get.existing.app_error":            {},
	"store.sql_channel.get_member.missing.app_error": {},
}

func mapChatError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var apiErr chatAPIError
	_ = json.Unmarshal(resp.Body(), &apiErr)

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, apiErr.Message)
	case http.StatusNotFound:
		if _, ok := chatAbsenceIDs[apiErr.ID]; ok {
			return fmt.Errorf("%w: %s", ErrNotFound, apiErr.ID)
		}
		return fmt.Errorf("http 404 (%s): %s", apiErr.ID, apiErr.Message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, apiErr.Message)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// crmAPIError is the error envelope CiviCRM APIv4 returns on failures.
type crmAPIError struct {
	ErrorMessage string `json:"error_message"`
	ErrorCode    any    `json:"error_code"`
}

func mapCRMError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var apiErr crmAPIError
	_ = json.Unmarshal(resp.Body(), &apiErr)
	msg := apiErr.ErrorMessage
	if msg == "" {
		msg = body
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	default:
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
	}
}
