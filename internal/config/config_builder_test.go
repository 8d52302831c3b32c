package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		CRM:  CRM{BaseURL: "https://crm.example.org", APIKey: "k"},
		Chat: Chat{BaseURL: "https://chat.example.org", Token: "tok", TeamName: "main"},
		Storage: Storage{
			DB: DB{DSN: "mattersync.db"},
		},
		Sync: Sync{CredentialSecret: "s3cret", ChannelType: "P"},
	}
}

func TestConfigBuilder_MergePriority(t *testing.T) {
	// mergo keeps the first non-zero value, so earlier sources win
	first := validConfig()
	second := validConfig()
	second.CRM.BaseURL = "https://other.example.org"
	second.Sync.PageSize = 99

	b := newConfigBuilder()
	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "https://crm.example.org", cfg.CRM.BaseURL)
	assert.Equal(t, 99, cfg.Sync.PageSize, "zero field filled from later source")
}

func TestConfigBuilder_ValidationFailure(t *testing.T) {
	incomplete := validConfig()
	incomplete.Chat.Token = ""

	b := newConfigBuilder()
	b.configs = append(b.configs, incomplete)

	_, err := b.build()
	require.ErrorIs(t, err, ErrInvalidChatConfigs)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}, wantErr: nil},
		{name: "missing crm key", mutate: func(c *StructuredConfig) { c.CRM.APIKey = "" }, wantErr: ErrInvalidCRMConfigs},
		{name: "missing chat team", mutate: func(c *StructuredConfig) { c.Chat.TeamName = "" }, wantErr: ErrInvalidChatConfigs},
		{name: "missing dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing credential secret", mutate: func(c *StructuredConfig) { c.Sync.CredentialSecret = "" }, wantErr: ErrInvalidSyncConfigs},
		{name: "bad channel type", mutate: func(c *StructuredConfig) { c.Sync.ChannelType = "X" }, wantErr: ErrInvalidSyncConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEffectivePageSize(t *testing.T) {
	s := Sync{PageSize: 10, CronPageSize: 100}
	assert.Equal(t, 10, s.EffectivePageSize(false))
	assert.Equal(t, 100, s.EffectivePageSize(true))

	s = Sync{}
	assert.Equal(t, 25, s.EffectivePageSize(false))
	assert.Equal(t, 25, s.EffectivePageSize(true))
}
