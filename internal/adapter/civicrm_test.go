package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/civibridge/mattersync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCRMTestServer(t *testing.T, handler http.HandlerFunc) CRMDirectory {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewCRMDirectory(CRMClientConfig{BaseURL: srv.URL, APIKey: "crm-key"})
}

// decodeAPIParams parses the form-encoded api4 params payload.
func decodeAPIParams(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	require.NoError(t, r.ParseForm())

	var params map[string]any
	require.NoError(t, json.Unmarshal([]byte(r.PostFormValue("params")), &params))
	return params
}

func writeCRMValues(w http.ResponseWriter, values any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"values": values})
}

func TestCRMDirectory_Contact(t *testing.T) {
	dir := newCRMTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/civicrm/ajax/api4/Contact/get", r.URL.Path)
		assert.Equal(t, "Bearer crm-key", r.Header.Get("X-Civi-Auth"))

		writeCRMValues(w, []map[string]any{{
			"id":                  7,
			"first_name":          "Jane",
			"last_name":           "Smith",
			"display_name":        "Jane Smith",
			"email_primary.email": "jane@example.org",
		}})
	})

	contact, err := dir.Contact(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), contact.ID)
	assert.Equal(t, "jane@example.org", contact.Email)
}

func TestCRMDirectory_Contact_Missing(t *testing.T) {
	dir := newCRMTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeCRMValues(w, []any{})
	})

	_, err := dir.Contact(context.Background(), 404)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCRMDirectory_ActiveGroupContactsPage(t *testing.T) {
	dir := newCRMTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/civicrm/ajax/api4/GroupContact/get", r.URL.Path)

		params := decodeAPIParams(t, r)
		assert.Equal(t, float64(25), params["limit"])
		assert.Equal(t, float64(50), params["offset"])

		where := params["where"].([]any)
		first := where[0].([]any)
		assert.Equal(t, "group_id", first[0])
		assert.Equal(t, "IN", first[1])

		writeCRMValues(w, []map[string]any{
			{"id": 1, "group_id": 2, "contact_id": 7, "status": "Added"},
			{"id": 2, "group_id": 3, "contact_id": 8, "status": "Added"},
		})
	})

	rows, err := dir.ActiveGroupContactsPage(context.Background(), []int64{2, 3}, 25, 50)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, models.StatusAdded, rows[0].Status)
	assert.Equal(t, int64(8), rows[1].ContactID)
}

func TestCRMDirectory_GroupContact_AnyStatus(t *testing.T) {
	dir := newCRMTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		params := decodeAPIParams(t, r)
		// lookup must not filter by status: a Removed row means rejoin, not create
		for _, clause := range params["where"].([]any) {
			assert.NotEqual(t, "status", clause.([]any)[0])
		}

		writeCRMValues(w, []map[string]any{
			{"id": 11, "group_id": 2, "contact_id": 7, "status": "Removed"},
		})
	})

	row, err := dir.GroupContact(context.Background(), 2, 7)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRemoved, row.Status)
}

func TestCRMDirectory_CreateGroupContact(t *testing.T) {
	dir := newCRMTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/civicrm/ajax/api4/GroupContact/create", r.URL.Path)

		params := decodeAPIParams(t, r)
		values := params["values"].(map[string]any)
		assert.Equal(t, "Added", values["status"])

		writeCRMValues(w, []map[string]any{{"id": 12, "group_id": 2, "contact_id": 7}})
	})

	row, err := dir.CreateGroupContact(context.Background(), 2, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(12), row.ID)
	assert.Equal(t, models.StatusAdded, row.Status, "omitted status defaults to Added")
}

func TestCRMDirectory_SetGroupContactStatus(t *testing.T) {
	dir := newCRMTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/civicrm/ajax/api4/GroupContact/update", r.URL.Path)

		params := decodeAPIParams(t, r)
		values := params["values"].(map[string]any)
		assert.Equal(t, "Removed", values["status"])

		writeCRMValues(w, []any{})
	})

	err := dir.SetGroupContactStatus(context.Background(), 11, models.StatusRemoved)
	require.NoError(t, err)
}

func TestCRMDirectory_Unauthorized(t *testing.T) {
	dir := newCRMTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"error_message": "bad key"})
	})

	_, err := dir.Group(context.Background(), 1)
	require.ErrorIs(t, err, ErrUnauthorized)
}
