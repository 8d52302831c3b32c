package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	CRM struct {
		BaseURL        string   `json:"base_url"`
		APIKey         string   `json:"api_key"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"crm,omitempty"`

	Chat struct {
		BaseURL        string   `json:"base_url"`
		Token          string   `json:"token"`
		TeamName       string   `json:"team_name"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"chat,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Sync struct {
		PageSize          int      `json:"page_size"`
		CronPageSize      int      `json:"cron_page_size"`
		Interval          Duration `json:"interval"`
		AdoptByEmail      bool     `json:"adopt_by_email"`
		ClearLinkOnDelete bool     `json:"clear_link_on_delete"`
		CredentialSecret  string   `json:"credential_secret"`
		ChannelType       string   `json:"channel_type"`
		LeaseTTL          Duration `json:"lease_ttl"`
	} `json:"sync,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		CRM: CRM{
			BaseURL:        jsonCfg.CRM.BaseURL,
			APIKey:         jsonCfg.CRM.APIKey,
			RequestTimeout: time.Duration(jsonCfg.CRM.RequestTimeout),
		},
		Chat: Chat{
			BaseURL:        jsonCfg.Chat.BaseURL,
			Token:          jsonCfg.Chat.Token,
			TeamName:       jsonCfg.Chat.TeamName,
			RequestTimeout: time.Duration(jsonCfg.Chat.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Sync: Sync{
			PageSize:          jsonCfg.Sync.PageSize,
			CronPageSize:      jsonCfg.Sync.CronPageSize,
			Interval:          time.Duration(jsonCfg.Sync.Interval),
			AdoptByEmail:      jsonCfg.Sync.AdoptByEmail,
			ClearLinkOnDelete: jsonCfg.Sync.ClearLinkOnDelete,
			CredentialSecret:  jsonCfg.Sync.CredentialSecret,
			ChannelType:       jsonCfg.Sync.ChannelType,
			LeaseTTL:          time.Duration(jsonCfg.Sync.LeaseTTL),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
