package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"crm":  {"base_url": "https://crm.example.org", "api_key": "k", "request_timeout": "15s"},
		"chat": {"base_url": "https://chat.example.org", "token": "tok", "team_name": "main"},
		"storage": {"db": {"dsn": "mattersync.db"}},
		"sync": {"page_size": 50, "interval": "10m", "credential_secret": "s3cret"},
		"server": {"http_address": "localhost:9090"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "https://crm.example.org", cfg.CRM.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.CRM.RequestTimeout)
	assert.Equal(t, "tok", cfg.Chat.Token)
	assert.Equal(t, "main", cfg.Chat.TeamName)
	assert.Equal(t, "mattersync.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 50, cfg.Sync.PageSize)
	assert.Equal(t, 10*time.Minute, cfg.Sync.Interval)
	assert.Equal(t, "s3cret", cfg.Sync.CredentialSecret)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/no/such/file.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeTempJSON(t, `{not json`)

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalVariants(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Duration
	}{
		{name: "string form", in: `"90s"`, want: 90 * time.Second},
		{name: "numeric nanoseconds", in: `1000000000`, want: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, d.UnmarshalJSON([]byte(tt.in)))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
